package breakout

import (
	"fmt"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Events reports what happened during one Step.
type Events struct {
	BallExited bool // Ball dropped past the exit bound this frame
	PaddleHit  bool // Ball bounced off the paddle
	BlocksHit  int  // Blocks removed this frame
	GameOver   bool // Game-over flag after this frame
}

// Session owns one game: the ball, the paddle and the live blocks.
// It is not safe for concurrent use; the platform drives it from one loop.
type Session struct {
	field  Playfield
	ball   *Ball
	paddle *Paddle
	blocks *BlockSet

	gameOver bool
	score    int
	frame    int
	total    int
}

// NewSession builds a session from the config and a block layout.
func NewSession(cfg config.BreakoutConfig, layout *Layout) *Session {
	field := Playfield{
		Width:     cfg.Playfield.Width,
		Height:    cfg.Playfield.Height,
		ExitBound: cfg.Playfield.ExitBound,
	}

	blocks := layout.Build(cfg.Blocks)
	return &Session{
		field: field,
		ball: NewBall(field,
			cfg.Ball.X, cfg.Ball.Y, cfg.Ball.Direction, cfg.Ball.Speed,
			cfg.Ball.Width, cfg.Ball.Height,
			config.ColorOf(cfg.Ball.Color, core.ColorWhite)),
		paddle: NewPaddle(field, cfg.Paddle.Width, cfg.Paddle.Height,
			config.ColorOf(cfg.Paddle.Color, core.ColorWhite)),
		blocks: NewBlockSet(blocks),
		total:  len(blocks),
	}
}

// NewSessionForLayout resolves layoutID and builds a session.
func NewSessionForLayout(cfg config.BreakoutConfig, layoutID string) (*Session, error) {
	layout, ok := LayoutByID(layoutID, cfg.Blocks)
	if !ok {
		return nil, fmt.Errorf("breakout: unknown layout %q", layoutID)
	}
	return NewSession(cfg, layout), nil
}

// Step runs one simulation frame with the pointer at pointerX.
//
// Order matters: paddle, ball, then the paddle collision, then the block
// collisions. The collision pass still runs on the frame that ends the game.
// Frames that start after game over do nothing, so the final state stays
// frozen for display.
func (s *Session) Step(pointerX int) Events {
	var ev Events
	if s.gameOver {
		ev.GameOver = true
		return ev
	}
	s.frame++

	s.paddle.Update(pointerX)
	if s.ball.Update() {
		s.gameOver = true
		ev.BallExited = true
	}

	paddle := s.paddle.BoundingBox()
	if s.ball.BoundingBox().Intersects(paddle) {
		// Hitting left of center steers the ball left, right of center steers it right.
		diff := paddle.CenterX() - s.ball.BoundingBox().CenterX()

		// Rest the ball on top of the paddle so it cannot collide again next frame.
		s.ball.PlaceAt(s.ball.X, float64(s.field.Height-paddle.H-s.ball.Height-1))
		s.ball.Bounce(diff)
		ev.PaddleHit = true
	}

	dead := s.blocks.RemoveOverlapping(s.ball.BoundingBox())
	if len(dead) > 0 {
		s.score += len(dead)
		s.ball.Bounce(0)
		if s.blocks.Len() == 0 {
			s.gameOver = true
		}
	}
	ev.BlocksHit = len(dead)
	ev.GameOver = s.gameOver

	return ev
}

// GameOver reports whether the session has ended.
func (s *Session) GameOver() bool {
	return s.gameOver
}

// Won reports whether the session ended with every block destroyed.
func (s *Session) Won() bool {
	return s.gameOver && s.blocks.Len() == 0
}

// Score returns the number of blocks destroyed.
func (s *Session) Score() int {
	return s.score
}

// Frame returns the number of simulation passes executed.
func (s *Session) Frame() int {
	return s.frame
}

// BlocksTotal returns the number of blocks the session started with.
func (s *Session) BlocksTotal() int {
	return s.total
}

// Playfield returns the simulated screen dimensions.
func (s *Session) Playfield() Playfield {
	return s.field
}

// Ball returns the ball.
func (s *Session) Ball() *Ball {
	return s.ball
}

// Paddle returns the paddle.
func (s *Session) Paddle() *Paddle {
	return s.paddle
}

// Blocks returns the live block set.
func (s *Session) Blocks() *BlockSet {
	return s.blocks
}

// Entities returns everything to draw this frame: blocks, then the paddle,
// then the ball.
func (s *Session) Entities() []core.Entity {
	out := make([]core.Entity, 0, s.blocks.Len()+2)
	for _, b := range s.blocks.All() {
		out = append(out, b)
	}
	out = append(out, s.paddle, s.ball)
	return out
}
