package core

import (
	"math"
	"testing"
)

func TestRectIntersects(t *testing.T) {
	paddle := NewRect(360, 585, 75, 15)
	block := NewRect(25, 0, 23, 15)

	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{"ball sinking into paddle", paddle, NewRect(400, 580, 10, 10), true},
		{"ball resting on paddle top", paddle, NewRect(400, 575, 10, 10), false},
		{"ball touching paddle right edge", paddle, NewRect(435, 588, 10, 10), false},
		{"ball one pixel into paddle corner", paddle, NewRect(434, 584, 10, 10), true},
		{"paddle hanging off the left", NewRect(-20, 585, 75, 15), NewRect(30, 590, 10, 10), true},
		{"ball inside block", block, NewRect(30, 3, 10, 10), true},
		{"ball below block", block, NewRect(30, 15, 10, 10), false},
		{"neighbouring blocks", block, NewRect(50, 0, 23, 15), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Intersects(tc.a); got != tc.expected {
				t.Errorf("Intersects() reversed = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	field := NewRect(0, 0, 800, 600)

	tests := []struct {
		x, y     int
		expected bool
	}{
		{0, 0, true},
		{799, 599, true},
		{800, 300, false},
		{400, 600, false},
		{-1, 10, false},
	}

	for _, tc := range tests {
		if got := field.Contains(tc.x, tc.y); got != tc.expected {
			t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
		}
	}
}

func TestRectEdgesAndCenter(t *testing.T) {
	r := NewRect(5, 10, 75, 15)

	if r.Right() != 80 {
		t.Errorf("Right() = %d, expected 80", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
	if r.CenterX() != 42.5 {
		t.Errorf("CenterX() = %f, expected 42.5", r.CenterX())
	}
}

func TestEuclidMod(t *testing.T) {
	tests := []struct {
		x, expected float64
	}{
		{0, 0},
		{200, 200},
		{360, 0},
		{-20, 340},
		{-380, 340},
		{725, 5},
		{-1e-18, 0},
	}

	for _, tc := range tests {
		result := EuclidMod(tc.x, 360)
		if math.Abs(result-tc.expected) > 1e-9 {
			t.Errorf("EuclidMod(%f, 360) = %f, expected %f", tc.x, result, tc.expected)
		}
		if result < 0 || result >= 360 {
			t.Errorf("EuclidMod(%f, 360) = %f, outside [0, 360)", tc.x, result)
		}
	}
}

func TestTrunc(t *testing.T) {
	tests := []struct {
		v        float64
		expected int
	}{
		{189.397, 189},
		{1, 1},
		{-3.42, -3},
		{0.999, 0},
	}

	for _, tc := range tests {
		if got := Trunc(tc.v); got != tc.expected {
			t.Errorf("Trunc(%f) = %d, expected %d", tc.v, got, tc.expected)
		}
	}
}

func TestClamp(t *testing.T) {
	// Paddle left edge on an 800 wide field with a 75 wide paddle.
	for _, tc := range []struct{ x, expected int }{
		{300, 300}, {-40, 0}, {760, 725}, {725, 725},
	} {
		if got := Clamp(tc.x, 0, 725); got != tc.expected {
			t.Errorf("Clamp(%d, 0, 725) = %d, expected %d", tc.x, got, tc.expected)
		}
	}

	if ClampF(15.5, 0, 10) != 10 {
		t.Error("ClampF(15.5, 0, 10) should be 10")
	}
}

func TestParseColor(t *testing.T) {
	c, ok := ParseColor(" Blue ")
	if !ok || c != ColorBlue {
		t.Errorf("ParseColor(Blue) = %v, %v, expected blue, true", c, ok)
	}
	if c.String() != "blue" {
		t.Errorf("String() = %q, expected blue", c.String())
	}
	if _, ok := ParseColor("chartreuse"); ok {
		t.Error("ParseColor should reject unknown names")
	}
}
