package breakout

import (
	"math"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Playfield is the simulated screen the entities live in.
type Playfield struct {
	Width     int
	Height    int
	ExitBound float64 // Ball y beyond this means the ball is lost
}

// Ball is the moving ball. Its float position is the source of truth;
// the bounding box is derived from it after every change.
type Ball struct {
	X, Y      float64
	Direction float64 // Degrees in [0, 360): 0 is straight up, increasing clockwise
	Speed     float64 // Pixels per frame
	Width     int
	Height    int
	Color     core.Color

	field Playfield
	rect  core.Rect
}

// NewBall creates a ball at (x, y) heading in direction at the given speed.
func NewBall(field Playfield, x, y, direction, speed float64, width, height int, color core.Color) *Ball {
	b := &Ball{
		X:         x,
		Y:         y,
		Direction: core.EuclidMod(direction, 360),
		Speed:     speed,
		Width:     width,
		Height:    height,
		Color:     color,
		field:     field,
	}
	b.syncRect()
	return b
}

// Update advances the ball one frame and reflects it off the top, left and
// right walls. It returns true when the ball has dropped past the exit bound.
func (b *Ball) Update() bool {
	rad := b.Direction * math.Pi / 180
	b.X += b.Speed * math.Sin(rad)
	b.Y -= b.Speed * math.Cos(rad)

	if b.Y <= 0 {
		b.Bounce(0)
		b.Y = 1
	}

	if b.X <= 0 {
		b.reflectVertical()
		b.X = 1
	}

	maxX := float64(b.field.Width - b.Width)
	if b.X > maxX {
		b.reflectVertical()
		b.X = maxX - 1
	}

	b.syncRect()
	return b.Y > b.field.ExitBound
}

// Bounce reflects the ball off a horizontal surface, then steers it by
// offset degrees. Positive offsets turn it counterclockwise.
func (b *Ball) Bounce(offset float64) {
	b.Direction = core.EuclidMod(180-b.Direction, 360)
	b.Direction = core.EuclidMod(b.Direction-offset, 360)
}

// reflectVertical reflects the ball off a vertical wall.
func (b *Ball) reflectVertical() {
	b.Direction = core.EuclidMod(360-b.Direction, 360)
}

// PlaceAt moves the ball's logical position and re-derives its bounding box.
func (b *Ball) PlaceAt(x, y float64) {
	b.X, b.Y = x, y
	b.syncRect()
}

func (b *Ball) syncRect() {
	b.rect = core.NewRect(core.Trunc(b.X), core.Trunc(b.Y), b.Width, b.Height)
}

// BoundingBox implements core.Entity.
func (b *Ball) BoundingBox() core.Rect {
	return b.rect
}

// Visual implements core.Entity.
func (b *Ball) Visual() core.Color {
	return b.Color
}
