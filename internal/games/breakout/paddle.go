package breakout

import "github.com/vovakirdan/tui-breakout/internal/core"

// Paddle is the player's bar at the bottom of the playfield.
// Its horizontal position comes entirely from the pointer.
type Paddle struct {
	rect       core.Rect
	color      core.Color
	fieldWidth int
}

// NewPaddle creates a paddle resting on the bottom edge at x = 0.
func NewPaddle(field Playfield, width, height int, color core.Color) *Paddle {
	return &Paddle{
		rect:       core.NewRect(0, field.Height-height, width, height),
		color:      color,
		fieldWidth: field.Width,
	}
}

// Update puts the left edge at pointerX, keeping the right edge on screen.
// There is no lower clamp: a negative pointer moves the paddle partly off
// the left edge.
func (p *Paddle) Update(pointerX int) {
	p.rect.X = pointerX
	if maxX := p.fieldWidth - p.rect.W; p.rect.X > maxX {
		p.rect.X = maxX
	}
}

// BoundingBox implements core.Entity.
func (p *Paddle) BoundingBox() core.Rect {
	return p.rect
}

// Visual implements core.Entity.
func (p *Paddle) Visual() core.Color {
	return p.color
}
