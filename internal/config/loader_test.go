package config

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := ParseBreakout(DefaultYAML())
	if err != nil {
		t.Fatalf("ParseBreakout(embedded) failed: %v", err)
	}

	if !reflect.DeepEqual(cfg, DefaultBreakoutConfig()) {
		t.Errorf("embedded defaults differ from DefaultBreakoutConfig():\n got %+v\nwant %+v", cfg, DefaultBreakoutConfig())
	}
}

func TestLoadBreakoutCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("ball:\n  speed: 12\nblocks:\n  rows: 3\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadBreakout(path)
	if err != nil {
		t.Fatalf("LoadBreakout() failed: %v", err)
	}

	if cfg.Ball.Speed != 12 {
		t.Errorf("Ball.Speed = %g, expected 12", cfg.Ball.Speed)
	}
	if cfg.Blocks.Rows != 3 {
		t.Errorf("Blocks.Rows = %d, expected 3", cfg.Blocks.Rows)
	}
	// Untouched keys keep their defaults
	if cfg.Blocks.Columns != 32 || cfg.Paddle.Width != 75 {
		t.Errorf("defaults not preserved: columns=%d paddle=%d", cfg.Blocks.Columns, cfg.Paddle.Width)
	}
}

func TestLoadBreakoutMissingFile(t *testing.T) {
	_, err := LoadBreakout(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("LoadBreakout() should fail for a missing custom path")
	}
}

func TestLoadBreakoutRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("paddle:\n  width: 900\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := LoadBreakout(path)
	if !errors.Is(err, ErrInvalid) {
		t.Errorf("LoadBreakout() error = %v, expected ErrInvalid", err)
	}
}

func TestLoadBreakoutRejectsNegativeSpeed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "slow.yaml")
	if err := os.WriteFile(path, []byte("ball:\n  speed: -5\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadBreakout(path)
	if !errors.Is(err, ErrInvalid) {
		t.Fatalf("LoadBreakout() error = %v, expected ErrInvalid", err)
	}
	if cfg.Ball.Speed != 0 {
		t.Errorf("rejected config should be zero, got speed %g", cfg.Ball.Speed)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*BreakoutConfig)
		ok     bool
	}{
		{"defaults", func(*BreakoutConfig) {}, true},
		{"zero columns", func(c *BreakoutConfig) { c.Blocks.Columns = 0 }, false},
		{"negative ball width", func(c *BreakoutConfig) { c.Ball.Width = -1 }, false},
		{"nan direction", func(c *BreakoutConfig) { c.Ball.Direction = math.NaN() }, false},
		{"infinite speed", func(c *BreakoutConfig) { c.Ball.Speed = math.Inf(1) }, false},
		{"zero speed", func(c *BreakoutConfig) { c.Ball.Speed = 0 }, false},
		{"zero frame rate", func(c *BreakoutConfig) { c.FrameRate = 0 }, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultBreakoutConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.ok && err != nil {
				t.Errorf("Validate() = %v, expected nil", err)
			}
			if !tc.ok && !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, expected ErrInvalid", err)
			}
		})
	}
}

func TestApplyBreakoutPreset(t *testing.T) {
	cfg := DefaultBreakoutConfig()
	ApplyBreakoutPreset(&cfg, DifficultyHard)
	if cfg.Ball.Speed != 13 || cfg.Paddle.Width != 55 {
		t.Errorf("hard preset: speed=%g paddle=%d", cfg.Ball.Speed, cfg.Paddle.Width)
	}

	cfg = DefaultBreakoutConfig()
	ApplyBreakoutPreset(&cfg, DifficultyNormal)
	if !reflect.DeepEqual(cfg, DefaultBreakoutConfig()) {
		t.Error("normal preset should not change the defaults")
	}

	if _, err := ParseDifficulty("insane"); err == nil {
		t.Error("ParseDifficulty should reject unknown presets")
	}
	if p, err := ParseDifficulty("easy"); err != nil || p != DifficultyEasy {
		t.Errorf("ParseDifficulty(easy) = %q, %v", p, err)
	}
}
