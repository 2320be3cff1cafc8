package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to map platform coordinates onto their playfield.
type RuntimeConfig struct {
	ScreenW  int // Screen width in platform units (cells or pixels)
	ScreenH  int // Screen height in platform units
	TickRate int // Simulation ticks per second
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	Frames   int  // Simulation passes executed this session
	GameOver bool // Whether the game has ended
	Won      bool // Whether the game ended by clearing the board
	Paused   bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
