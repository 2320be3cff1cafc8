package breakout

import "math"

// Snapshot is the observable session state, flattened to primitives
// for replay verification and determinism tests.
type Snapshot struct {
	Frame    int
	Score    int
	GameOver bool

	BallX, BallY    float64
	BallDirection   float64
	PaddleX         int
	BlocksRemaining int

	// Grid positions of live blocks, row*1000+col, in creation order.
	Blocks []int
}

// Snapshot captures the current session state.
func (s *Session) Snapshot() Snapshot {
	live := make([]int, 0, s.blocks.Len())
	for _, b := range s.blocks.All() {
		live = append(live, b.Row*1000+b.Col)
	}

	return Snapshot{
		Frame:           s.frame,
		Score:           s.score,
		GameOver:        s.gameOver,
		BallX:           s.ball.X,
		BallY:           s.ball.Y,
		BallDirection:   s.ball.Direction,
		PaddleX:         s.paddle.BoundingBox().X,
		BlocksRemaining: s.blocks.Len(),
		Blocks:          live,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
// Floats are hashed by bit pattern, so any drift changes the result.
func (snap *Snapshot) Hash() uint64 {
	h := uint64(snap.Frame)                 //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)           //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PaddleX)         //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BlocksRemaining) //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.BallX)
	h = h*31 + math.Float64bits(snap.BallY)
	h = h*31 + math.Float64bits(snap.BallDirection)

	if snap.GameOver {
		h = h*31 + 1
	}
	for _, b := range snap.Blocks {
		h = h*31 + uint64(b) //#nosec G115 -- hash computation
	}
	return h
}
