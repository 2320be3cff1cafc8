package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewLevels(t *testing.T) {
	tests := []struct {
		level     string
		wantDebug bool
		wantInfo  bool
	}{
		{"", false, true},
		{"debug", true, true},
		{"info", false, true},
		{"warn", false, false},
	}

	for _, tt := range tests {
		var buf bytes.Buffer
		logger, closeFn, err := New(Options{Level: tt.level, Fallback: &buf})
		if err != nil {
			t.Fatalf("New(%q): %v", tt.level, err)
		}

		logger.Debug("debug line")
		logger.Info("info line")
		closeFn()

		out := buf.String()
		if got := strings.Contains(out, "debug line"); got != tt.wantDebug {
			t.Errorf("level %q: debug logged = %v, expected %v", tt.level, got, tt.wantDebug)
		}
		if got := strings.Contains(out, "info line"); got != tt.wantInfo {
			t.Errorf("level %q: info logged = %v, expected %v", tt.level, got, tt.wantInfo)
		}
	}
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	if _, _, err := New(Options{Level: "chatty"}); err == nil {
		t.Error("expected an error for an unknown level")
	}
}

func TestNewWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "breakout.log")

	logger, closeFn, err := New(Options{File: path, Prefix: "breakout"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	logger.Info("game over", "score", 12)
	if err := closeFn(); err != nil {
		t.Fatalf("close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	out := string(data)
	for _, want := range []string{"breakout", "game over", "score=12"} {
		if !strings.Contains(out, want) {
			t.Errorf("log file missing %q:\n%s", want, out)
		}
	}
}

func TestDiscard(t *testing.T) {
	// Must not panic or write anywhere.
	Discard().Error("dropped")
}
