// Package config provides YAML-based game configuration loading and
// difficulty presets for the breakout platform.
package config

import (
	"errors"
	"fmt"
	"math"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// ErrInvalid is returned when a configuration cannot produce a playable session.
var ErrInvalid = errors.New("config: invalid configuration")

// BreakoutConfig contains all configuration for the Breakout game.
type BreakoutConfig struct {
	Playfield PlayfieldConfig `yaml:"playfield"`
	FrameRate int             `yaml:"frame_rate"`
	Ball      BallConfig      `yaml:"ball"`
	Paddle    PaddleConfig    `yaml:"paddle"`
	Blocks    BlocksConfig    `yaml:"blocks"`
}

// PlayfieldConfig defines the simulated screen.
type PlayfieldConfig struct {
	Width     int     `yaml:"width"`
	Height    int     `yaml:"height"`
	ExitBound float64 `yaml:"exit_bound"` // Ball y beyond this ends the game
}

// BallConfig defines the ball's starting state.
type BallConfig struct {
	X         float64 `yaml:"x"`
	Y         float64 `yaml:"y"`
	Direction float64 `yaml:"direction"` // Degrees, 0 = up, clockwise
	Speed     float64 `yaml:"speed"`     // Pixels per frame
	Width     int     `yaml:"width"`
	Height    int     `yaml:"height"`
	Color     string  `yaml:"color"`
}

// PaddleConfig defines the player's paddle.
type PaddleConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Color  string `yaml:"color"`
}

// BlocksConfig defines the block grid geometry.
type BlocksConfig struct {
	Width   int    `yaml:"width"`
	Height  int    `yaml:"height"`
	Gap     int    `yaml:"gap"`
	Left    int    `yaml:"left"`
	Top     int    `yaml:"top"`
	Rows    int    `yaml:"rows"`
	Columns int    `yaml:"columns"`
	Color   string `yaml:"color"`
}

// ColorOf resolves a configured color name, falling back when it is empty or unknown.
func ColorOf(name string, fallback core.Color) core.Color {
	if c, ok := core.ParseColor(name); ok {
		return c
	}
	return fallback
}

// Validate checks that the configuration describes a playable session.
func (c BreakoutConfig) Validate() error {
	var errs []error
	positive := func(name string, v int) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %d", name, v))
		}
	}

	positive("playfield.width", c.Playfield.Width)
	positive("playfield.height", c.Playfield.Height)
	positive("frame_rate", c.FrameRate)
	positive("ball.width", c.Ball.Width)
	positive("ball.height", c.Ball.Height)
	positive("paddle.width", c.Paddle.Width)
	positive("paddle.height", c.Paddle.Height)
	positive("blocks.width", c.Blocks.Width)
	positive("blocks.height", c.Blocks.Height)
	positive("blocks.rows", c.Blocks.Rows)
	positive("blocks.columns", c.Blocks.Columns)

	if c.Paddle.Width > c.Playfield.Width {
		errs = append(errs, fmt.Errorf("paddle.width %d exceeds playfield.width %d", c.Paddle.Width, c.Playfield.Width))
	}
	if c.Ball.Width >= c.Playfield.Width {
		errs = append(errs, fmt.Errorf("ball.width %d must be smaller than playfield.width %d", c.Ball.Width, c.Playfield.Width))
	}
	for name, v := range map[string]float64{
		"ball.x":               c.Ball.X,
		"ball.y":               c.Ball.Y,
		"ball.direction":       c.Ball.Direction,
		"ball.speed":           c.Ball.Speed,
		"playfield.exit_bound": c.Playfield.ExitBound,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			errs = append(errs, fmt.Errorf("%s must be finite", name))
		}
	}
	if c.Ball.Speed <= 0 {
		errs = append(errs, fmt.Errorf("ball.speed must be positive, got %g", c.Ball.Speed))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParseDifficulty maps a CLI value to a preset. Empty means no preset.
func ParseDifficulty(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "":
		return "", nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
}
