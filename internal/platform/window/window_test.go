package window

import (
	"image/color"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

func TestRGBA(t *testing.T) {
	tests := []struct {
		in   core.Color
		want color.RGBA
	}{
		{core.ColorDefault, color.RGBA{0xff, 0xff, 0xff, 0xff}},
		{core.ColorBlue, color.RGBA{0x40, 0x70, 0xe0, 0xff}},
		{core.ColorBlack, color.RGBA{0x00, 0x00, 0x00, 0xff}},
		{core.Color(200), color.RGBA{0xff, 0xff, 0xff, 0xff}},
	}

	for _, tt := range tests {
		if got := RGBA(tt.in); got != tt.want {
			t.Errorf("RGBA(%v) = %v, expected %v", tt.in, got, tt.want)
		}
	}
}

func TestPaletteCoversColors(t *testing.T) {
	for c := core.ColorDefault; c <= core.ColorGray; c++ {
		if _, ok := palette[c]; !ok {
			t.Errorf("no window color for %v", c)
		}
	}
}

func TestAppLayoutMatchesPlayfield(t *testing.T) {
	app := NewApp(breakout.New(breakout.ClassicLayoutID), Options{})

	w, h := app.Layout(1920, 1080)
	if w != 800 || h != 600 {
		t.Errorf("Layout = %dx%d, expected 800x600", w, h)
	}
}

func TestAppSkipsZeroScore(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	// The ball starts just above the exit bound and falls straight out.
	cfg := config.DefaultBreakoutConfig()
	cfg.Ball.X, cfg.Ball.Y, cfg.Ball.Direction = 400, 595, 180

	g := breakout.New(breakout.ClassicLayoutID)
	app := NewApp(g, Options{Store: store})
	g.ResetWithConfig(core.RuntimeConfig{ScreenW: 800, ScreenH: 600}, cfg)
	app.state = g.State()

	app.step()
	if !app.State().GameOver {
		t.Fatal("ball should be lost on the first frame")
	}
	app.step()

	stats, err := store.Stats(g.ID())
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	// A zero score is never stored.
	if stats.GamesCount != 0 {
		t.Errorf("GamesCount = %d, expected 0", stats.GamesCount)
	}
}

func TestAppScaleBounds(t *testing.T) {
	tests := []struct {
		scale, expected float64
	}{
		{0, 1},
		{-2, 1},
		{0.25, 0.5},
		{2, 2},
		{10, 4},
	}

	for _, tt := range tests {
		app := NewApp(breakout.New(breakout.ClassicLayoutID), Options{Scale: tt.scale})
		if app.opts.Scale != tt.expected {
			t.Errorf("Scale %v = %v, expected %v", tt.scale, app.opts.Scale, tt.expected)
		}
	}
}

func TestAppSamplesCursorInsidePlayfield(t *testing.T) {
	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 120, 300, true},
		{"left of window", -5, 300, false},
		{"right of window", 800, 300, false},
		{"below window", 120, 600, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := NewApp(breakout.New(breakout.ClassicLayoutID), Options{})
			app.sampleCursor(tt.x, tt.y)
			if app.input.HasPointer != tt.expected {
				t.Errorf("HasPointer = %v, expected %v", app.input.HasPointer, tt.expected)
			}
		})
	}

	// An unchanged x is not resent.
	app := NewApp(breakout.New(breakout.ClassicLayoutID), Options{})
	app.sampleCursor(120, 300)
	app.input.Clear()
	app.sampleCursor(120, 310)
	if app.input.HasPointer {
		t.Error("a cursor that did not move horizontally should not be resent")
	}
}
