package breakout

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-breakout/internal/config"
)

func newClassicSession(t *testing.T, cfg config.BreakoutConfig) *Session {
	t.Helper()
	s, err := NewSessionForLayout(cfg, ClassicLayoutID)
	if err != nil {
		t.Fatalf("NewSessionForLayout: %v", err)
	}
	return s
}

func TestNewSessionDefaults(t *testing.T) {
	s := newClassicSession(t, config.DefaultBreakoutConfig())

	if s.Blocks().Len() != 160 {
		t.Errorf("blocks = %d, expected 160", s.Blocks().Len())
	}
	if s.BlocksTotal() != 160 {
		t.Errorf("BlocksTotal = %d, expected 160", s.BlocksTotal())
	}
	if s.GameOver() || s.Won() || s.Score() != 0 || s.Frame() != 0 {
		t.Error("fresh session should have no progress")
	}

	first := s.Blocks().All()[0].BoundingBox()
	if first.X != 1 || first.Y != 80 || first.W != 23 || first.H != 15 {
		t.Errorf("first block = %+v, expected {1 80 23 15}", first)
	}
	last := s.Blocks().All()[159].BoundingBox()
	if last.X != 1+31*25 || last.Y != 80+4*17 {
		t.Errorf("last block = %+v, expected X=%d Y=%d", last, 1+31*25, 80+4*17)
	}
}

func TestSessionFirstFrame(t *testing.T) {
	s := newClassicSession(t, config.DefaultBreakoutConfig())

	ev := s.Step(0)

	if ev.BallExited || ev.PaddleHit || ev.BlocksHit != 0 || ev.GameOver {
		t.Errorf("unexpected events on first frame: %+v", ev)
	}

	b := s.Ball()
	if b.X != 1 {
		t.Errorf("ball X = %v, expected 1", b.X)
	}
	if math.Abs(b.Y-189.3969262) > epsilon {
		t.Errorf("ball Y = %v, expected 189.3969262", b.Y)
	}
	if b.Direction != 160 {
		t.Errorf("ball Direction = %v, expected 160", b.Direction)
	}
	if s.Frame() != 1 {
		t.Errorf("Frame = %d, expected 1", s.Frame())
	}
}

func TestSessionBottomExitFreezes(t *testing.T) {
	cfg := config.DefaultBreakoutConfig()
	cfg.Ball.X, cfg.Ball.Y, cfg.Ball.Direction = 400, 595, 180
	s := newClassicSession(t, cfg)

	ev := s.Step(0)
	if !ev.BallExited || !ev.GameOver {
		t.Fatalf("expected exit and game over, got %+v", ev)
	}
	if s.Won() {
		t.Error("losing the ball with blocks left is not a win")
	}

	frozen := s.Snapshot()

	for range 5 {
		ev = s.Step(700)
		if ev.BallExited {
			t.Error("exit should be signalled only on the frame it happens")
		}
		if !ev.GameOver {
			t.Error("game over should stay set")
		}
	}

	after := s.Snapshot()
	if frozen.Hash() != after.Hash() {
		t.Errorf("state changed after game over: %+v -> %+v", frozen, after)
	}
	if s.Paddle().BoundingBox().X != 0 {
		t.Errorf("paddle moved after game over: X = %d", s.Paddle().BoundingBox().X)
	}
}

func TestSessionPaddleBounce(t *testing.T) {
	cfg := config.DefaultBreakoutConfig()
	cfg.Ball.X, cfg.Ball.Y, cfg.Ball.Direction = 30, 570, 180
	s := newClassicSession(t, cfg)

	ev := s.Step(0)
	if !ev.PaddleHit {
		t.Fatalf("expected a paddle hit, got %+v", ev)
	}

	b := s.Ball()
	if b.Y != 574 {
		t.Errorf("ball Y = %v, expected 574 (resting on the paddle)", b.Y)
	}

	// Paddle center 37.5, ball center 35: bounce(2.5) from 180 gives -2.5.
	if !almostEqual(b.Direction, 357.5) {
		t.Errorf("ball Direction = %v, expected 357.5", b.Direction)
	}

	ev = s.Step(0)
	if ev.PaddleHit {
		t.Error("ball resting above the paddle should not collide again")
	}
}

func TestSessionPaddleSteering(t *testing.T) {
	tests := []struct {
		name    string
		ballX   float64
		wantDir float64
	}{
		// Ball right of paddle center: negative diff steers clockwise (right).
		{"right half", 60, 27.5},
		// Ball left of paddle center: positive diff steers counterclockwise (left).
		{"left half", 5, 332.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultBreakoutConfig()
			cfg.Ball.X, cfg.Ball.Y, cfg.Ball.Direction = tt.ballX, 570, 180
			s := newClassicSession(t, cfg)

			s.Step(0)
			if !almostEqual(s.Ball().Direction, tt.wantDir) {
				t.Errorf("Direction = %v, expected %v", s.Ball().Direction, tt.wantDir)
			}
		})
	}
}

func TestSessionMultiBlockHitBouncesOnce(t *testing.T) {
	cfg := config.DefaultBreakoutConfig()
	cfg.Ball.X, cfg.Ball.Y, cfg.Ball.Direction = 18, 100, 0

	// Two adjacent blocks: [1,24) and [26,49) on y [80,95).
	s := NewSession(cfg, ParseLayout("pair", "Pair", []string{"##"}))

	// The ball moves to y=90, x [18,28), overlapping both blocks.
	ev := s.Step(700)

	if ev.BlocksHit != 2 {
		t.Fatalf("BlocksHit = %d, expected 2", ev.BlocksHit)
	}
	if s.Score() != 2 {
		t.Errorf("Score = %d, expected 2", s.Score())
	}
	// One bounce turns 0 into 180; a second would turn it back to 0.
	if s.Ball().Direction != 180 {
		t.Errorf("Direction = %v, expected 180 (single bounce)", s.Ball().Direction)
	}
	if !ev.GameOver || !s.Won() {
		t.Error("clearing the last block should end the game as a win")
	}
	if ev.BallExited {
		t.Error("ball did not exit")
	}
}

func TestSessionPartialBlockHit(t *testing.T) {
	cfg := config.DefaultBreakoutConfig()
	cfg.Ball.X, cfg.Ball.Y, cfg.Ball.Direction = 5, 100, 0
	s := NewSession(cfg, ParseLayout("pair", "Pair", []string{"##"}))

	ev := s.Step(700)

	if ev.BlocksHit != 1 || s.Blocks().Len() != 1 {
		t.Fatalf("BlocksHit = %d, remaining = %d, expected 1 and 1", ev.BlocksHit, s.Blocks().Len())
	}
	if ev.GameOver {
		t.Error("game should continue while blocks remain")
	}
	if remaining := s.Blocks().All()[0]; remaining.Col != 1 {
		t.Errorf("remaining block col = %d, expected 1", remaining.Col)
	}
}

func TestSessionCollisionsRunOnExitFrame(t *testing.T) {
	cfg := config.DefaultBreakoutConfig()
	cfg.Ball.X, cfg.Ball.Y, cfg.Ball.Direction = 5, 595, 180
	cfg.Blocks.Top = 600
	s := NewSession(cfg, ParseLayout("low", "Low", []string{"#"}))

	ev := s.Step(700)

	if !ev.BallExited {
		t.Fatal("ball should exit")
	}
	if ev.BlocksHit != 1 || s.Score() != 1 {
		t.Errorf("block under the exit point should still be hit: %+v score=%d", ev, s.Score())
	}
}

func TestSessionDeterminism(t *testing.T) {
	pointer := func(i int) int {
		return int(360 + 340*math.Sin(float64(i)/17))
	}

	run := func() Snapshot {
		s := newClassicSession(t, config.DefaultBreakoutConfig())
		for i := range 3000 {
			if s.Step(pointer(i)).GameOver {
				break
			}
		}
		return s.Snapshot()
	}

	snap1, snap2 := run(), run()
	if snap1.Hash() != snap2.Hash() {
		t.Errorf("Determinism failed: hashes differ. Run1=%d, Run2=%d", snap1.Hash(), snap2.Hash())
	}
	if snap1.Score != snap2.Score || snap1.Frame != snap2.Frame {
		t.Errorf("Determinism failed: %+v vs %+v", snap1, snap2)
	}
}

func TestSessionDirectionStaysFinite(t *testing.T) {
	s := newClassicSession(t, config.DefaultBreakoutConfig())

	for range 5000 {
		// Track the ball so the rally keeps going.
		ev := s.Step(int(s.Ball().X) - 32)

		d := s.Ball().Direction
		if math.IsNaN(d) || math.IsInf(d, 0) || d < 0 || d >= 360 {
			t.Fatalf("frame %d: Direction = %v", s.Frame(), d)
		}
		if ev.GameOver {
			break
		}
	}

	if s.Score() == 0 {
		t.Error("a tracking paddle should destroy at least one block")
	}
}

func TestSessionEntities(t *testing.T) {
	s := newClassicSession(t, config.DefaultBreakoutConfig())
	ents := s.Entities()

	if len(ents) != 162 {
		t.Fatalf("Entities = %d, expected 162", len(ents))
	}
	if ents[160] != s.Paddle() || ents[161] != s.Ball() {
		t.Error("paddle and ball should be drawn last")
	}
}

func TestNewSessionForUnknownLayout(t *testing.T) {
	if _, err := NewSessionForLayout(config.DefaultBreakoutConfig(), "nope"); err == nil {
		t.Error("expected an error for an unknown layout")
	}
}
