package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-breakout/internal/config"
)

func TestCheckConfig(t *testing.T) {
	dir := t.TempDir()
	write := func(name, body string) string {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
			t.Fatal(err)
		}
		return path
	}

	good := write("good.yaml", "ball:\n  speed: 12\n")
	negative := write("negative.yaml", "ball:\n  speed: -5\n")
	broken := write("broken.yaml", "ball: [\n")

	tests := []struct {
		name    string
		path    string
		wantErr bool
		invalid bool
	}{
		{"no flag", "", false, false},
		{"valid file", good, false, false},
		{"negative speed", negative, true, true},
		{"malformed yaml", broken, true, false},
		{"missing file", filepath.Join(dir, "nope.yaml"), true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkConfig(tt.path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("checkConfig() error = %v, expected error %v", err, tt.wantErr)
			}
			if tt.invalid && !errors.Is(err, config.ErrInvalid) {
				t.Errorf("checkConfig() error = %v, expected ErrInvalid", err)
			}
		})
	}
}

func TestSetupRejectsBadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("ball:\n  speed: -5\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	old := flagConfig
	flagConfig = path
	t.Cleanup(func() { flagConfig = old })

	if err := setup(listCmd, nil); !errors.Is(err, config.ErrInvalid) {
		t.Errorf("setup() error = %v, expected ErrInvalid", err)
	}
}
