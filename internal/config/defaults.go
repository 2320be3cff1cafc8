package config

import (
	_ "embed"
)

//go:embed defaults/breakout.yaml
var defaultBreakoutYAML []byte

// DefaultBreakoutConfig returns the default Breakout configuration:
// an 800x600 playfield, a 10px ball at (0, 180) heading 200 degrees at
// 10px per frame, a 75x15 paddle and five rows of 32 blue blocks.
func DefaultBreakoutConfig() BreakoutConfig {
	return BreakoutConfig{
		Playfield: PlayfieldConfig{
			Width:     800,
			Height:    600,
			ExitBound: 600,
		},
		FrameRate: 30,
		Ball: BallConfig{
			X:         0,
			Y:         180,
			Direction: 200,
			Speed:     10,
			Width:     10,
			Height:    10,
			Color:     "white",
		},
		Paddle: PaddleConfig{
			Width:  75,
			Height: 15,
			Color:  "white",
		},
		Blocks: BlocksConfig{
			Width:   23,
			Height:  15,
			Gap:     2,
			Left:    1,
			Top:     80,
			Rows:    5,
			Columns: 32,
			Color:   "blue",
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultBreakoutYAML
}
