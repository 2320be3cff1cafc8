// Package core provides fundamental types and utilities shared by the
// simulation and the platform layers. It has no external dependencies
// (especially no Bubble Tea or Ebitengine) to keep game logic pure and testable.
package core

import "math"

// Rect represents an axis-aligned bounding box in playfield units.
// The right and bottom edges are exclusive.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Intersects returns true if this rectangle overlaps with another.
// Touching edges do not count as an overlap.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// CenterX returns the horizontal center as a float, without integer rounding.
func (r Rect) CenterX() float64 {
	return float64(r.X) + float64(r.W)/2
}

// Entity is anything the simulation exposes to a renderer: a bounding box
// and the color it should be drawn with.
type Entity interface {
	BoundingBox() Rect
	Visual() Color
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// EuclidMod returns x modulo m with the sign of m, so negative inputs wrap
// into [0, m) instead of (-m, 0].
func EuclidMod(x, m float64) float64 {
	r := math.Mod(x, m)
	if r < 0 {
		r += m
	}
	// math.Mod(-1e-18, 360) + 360 rounds back up to m.
	if r >= m {
		r -= m
	}
	return r
}

// Trunc converts a float coordinate to the integer grid by truncating toward zero.
func Trunc(v float64) int {
	return int(v)
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
