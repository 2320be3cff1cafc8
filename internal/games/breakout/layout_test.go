package breakout

import (
	"testing"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

func TestParseLayout(t *testing.T) {
	l := ParseLayout("t", "Test", []string{
		"#.1",
		"7",
	})

	if l.Rows != 2 || l.Cols != 3 {
		t.Fatalf("size = %dx%d, expected 2x3", l.Rows, l.Cols)
	}
	if l.Count() != 3 {
		t.Errorf("Count = %d, expected 3", l.Count())
	}

	tests := []struct {
		row, col int
		want     LayoutCell
	}{
		{0, 0, LayoutCell{Present: true}},
		{0, 1, LayoutCell{}},
		{0, 2, LayoutCell{Present: true, Color: core.ColorRed}},
		{1, 0, LayoutCell{Present: true, Color: core.ColorMagenta}},
		{1, 2, LayoutCell{}}, // short line padded
	}
	for _, tt := range tests {
		if got := l.Cells[tt.row][tt.col]; got != tt.want {
			t.Errorf("cell(%d,%d) = %+v, expected %+v", tt.row, tt.col, got, tt.want)
		}
	}
}

func TestLayoutBuildGeometry(t *testing.T) {
	cfg := config.DefaultBreakoutConfig().Blocks
	l := ParseLayout("t", "Test", []string{
		"...",
		"..3",
	})

	blocks := l.Build(cfg)
	if len(blocks) != 1 {
		t.Fatalf("blocks = %d, expected 1", len(blocks))
	}

	b := blocks[0]
	want := core.NewRect(1+2*25, 80+17, 23, 15)
	if b.BoundingBox() != want {
		t.Errorf("BoundingBox = %+v, expected %+v", b.BoundingBox(), want)
	}
	if b.Visual() != core.ColorYellow {
		t.Errorf("Visual = %v, expected yellow", b.Visual())
	}
	if b.Row != 1 || b.Col != 2 {
		t.Errorf("grid pos = (%d,%d), expected (1,2)", b.Row, b.Col)
	}
}

func TestLayoutBuildUsesConfiguredColor(t *testing.T) {
	cfg := config.DefaultBreakoutConfig().Blocks
	cfg.Color = "green"

	blocks := FullLayout(1, 2).Build(cfg)
	for _, b := range blocks {
		if b.Visual() != core.ColorGreen {
			t.Errorf("Visual = %v, expected green", b.Visual())
		}
	}
}

func TestBuiltinLayouts(t *testing.T) {
	seen := make(map[string]bool)
	for _, l := range BuiltinLayouts() {
		if seen[l.ID] {
			t.Errorf("duplicate layout %q", l.ID)
		}
		seen[l.ID] = true

		if l.ID == ClassicLayoutID {
			t.Errorf("classic must not be listed as a builtin")
		}
		if l.Cols != 32 {
			t.Errorf("%s: Cols = %d, expected 32", l.ID, l.Cols)
		}
		if l.Count() == 0 {
			t.Errorf("%s: layout has no blocks", l.ID)
		}
	}
}

func TestLayoutByID(t *testing.T) {
	cfg := config.DefaultBreakoutConfig().Blocks

	tests := []struct {
		id     string
		ok     bool
		blocks int
	}{
		{ClassicLayoutID, true, 160},
		{"", true, 160},
		{"rainbow", true, 7 * 32},
		{"checker", true, 80},
		{"missing", false, 0},
	}

	for _, tt := range tests {
		l, ok := LayoutByID(tt.id, cfg)
		if ok != tt.ok {
			t.Errorf("LayoutByID(%q) ok = %v, expected %v", tt.id, ok, tt.ok)
			continue
		}
		if ok && l.Count() != tt.blocks {
			t.Errorf("LayoutByID(%q) count = %d, expected %d", tt.id, l.Count(), tt.blocks)
		}
	}
}

func TestBlockSetRemoveOverlapping(t *testing.T) {
	blocks := FullLayout(1, 4).Build(config.DefaultBreakoutConfig().Blocks)
	set := NewBlockSet(blocks)

	// Covers the gap between columns 1 and 2.
	dead := set.RemoveOverlapping(core.NewRect(45, 85, 10, 5))
	if len(dead) != 2 {
		t.Fatalf("removed %d, expected 2", len(dead))
	}
	if set.Len() != 2 {
		t.Fatalf("Len = %d, expected 2", set.Len())
	}
	if set.All()[0].Col != 0 || set.All()[1].Col != 3 {
		t.Errorf("remaining cols = %d,%d, expected 0,3", set.All()[0].Col, set.All()[1].Col)
	}

	if dead := set.RemoveOverlapping(core.NewRect(0, 0, 5, 5)); len(dead) != 0 {
		t.Errorf("removed %d blocks with a miss, expected 0", len(dead))
	}
}
