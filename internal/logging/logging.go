// Package logging builds the charmbracelet/log loggers shared by the
// breakout commands and platforms.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// Options configures a logger.
type Options struct {
	// Level is a log level name ("debug", "info", "warn", "error").
	// Empty means info.
	Level string

	// File, when set, receives the log output instead of Fallback.
	File string

	// Prefix is printed before every message.
	Prefix string

	// Fallback is used when File is empty. Nil means stderr.
	Fallback io.Writer
}

// New creates a logger and returns a close function for its output.
// The close function is safe to call when no file was opened.
func New(opts Options) (*log.Logger, func() error, error) {
	level := log.InfoLevel
	if opts.Level != "" {
		parsed, err := log.ParseLevel(opts.Level)
		if err != nil {
			return nil, nil, fmt.Errorf("logging: %w", err)
		}
		level = parsed
	}

	var w io.Writer = os.Stderr
	if opts.Fallback != nil {
		w = opts.Fallback
	}
	closeFn := func() error { return nil }

	if opts.File != "" {
		if err := os.MkdirAll(filepath.Dir(opts.File), 0o755); err != nil {
			return nil, nil, fmt.Errorf("logging: cannot create directory for %s: %w", opts.File, err)
		}
		f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("logging: cannot open %s: %w", opts.File, err)
		}
		w = f
		closeFn = f.Close
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          opts.Prefix,
		Level:           level,
	})
	return logger, closeFn, nil
}

// Discard returns a logger that drops everything. Interactive terminal
// sessions use it so log lines never land on the alternate screen.
func Discard() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.FatalLevel})
}
