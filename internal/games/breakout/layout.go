// Package breakout implements a pointer-driven brick breaker: a ball moving
// by direction and speed, a paddle that follows the pointer, and a grid of
// blocks removed on contact.
package breakout

import (
	"strings"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// LayoutCell describes one grid position of a layout.
type LayoutCell struct {
	Present bool
	Color   core.Color // ColorDefault means "use the configured block color"
}

// Layout is a block arrangement on the grid.
type Layout struct {
	ID    string
	Name  string
	Rows  int
	Cols  int
	Cells [][]LayoutCell // [row][col]
}

// palette maps layout digits to block colors.
var palette = map[byte]core.Color{
	'1': core.ColorRed,
	'2': core.ColorOrange,
	'3': core.ColorYellow,
	'4': core.ColorGreen,
	'5': core.ColorCyan,
	'6': core.ColorBlue,
	'7': core.ColorMagenta,
}

// ParseLayout creates a Layout from an ASCII map.
// Characters:
//
//	'#' = block in the configured color
//	'1'-'7' = block in a palette color (red, orange, yellow, green, cyan, blue, magenta)
//	anything else = empty
func ParseLayout(id, name string, lines []string) *Layout {
	cols := 0
	for _, line := range lines {
		cols = core.Max(cols, len(line))
	}

	layout := &Layout{
		ID:    id,
		Name:  name,
		Rows:  len(lines),
		Cols:  cols,
		Cells: make([][]LayoutCell, len(lines)),
	}

	for row, line := range lines {
		layout.Cells[row] = make([]LayoutCell, cols)
		for col := 0; col < len(line); col++ {
			ch := line[col]
			switch {
			case ch == '#':
				layout.Cells[row][col] = LayoutCell{Present: true}
			case palette[ch] != core.ColorDefault:
				layout.Cells[row][col] = LayoutCell{Present: true, Color: palette[ch]}
			}
		}
	}

	return layout
}

// FullLayout is the classic grid: every cell holds a block.
func FullLayout(rows, cols int) *Layout {
	lines := make([]string, rows)
	for i := range lines {
		lines[i] = strings.Repeat("#", cols)
	}
	return ParseLayout(ClassicLayoutID, "Classic", lines)
}

// Count returns the number of blocks the layout produces.
func (l *Layout) Count() int {
	n := 0
	for _, row := range l.Cells {
		for _, c := range row {
			if c.Present {
				n++
			}
		}
	}
	return n
}

// Build places the layout's blocks using the configured grid geometry:
// x = left + col*(width+gap), y = top + row*(height+gap).
func (l *Layout) Build(cfg config.BlocksConfig) []*Block {
	base := config.ColorOf(cfg.Color, core.ColorBlue)
	blocks := make([]*Block, 0, l.Count())

	for row, cells := range l.Cells {
		y := cfg.Top + row*(cfg.Height+cfg.Gap)
		for col, c := range cells {
			if !c.Present {
				continue
			}
			color := c.Color
			if color == core.ColorDefault {
				color = base
			}
			x := cfg.Left + col*(cfg.Width+cfg.Gap)
			blocks = append(blocks, NewBlock(core.NewRect(x, y, cfg.Width, cfg.Height), color, row, col))
		}
	}
	return blocks
}

// ClassicLayoutID names the full grid sized from the config.
const ClassicLayoutID = "classic"

// BuiltinLayouts returns the patterned layouts. Each is 32 columns wide to
// match the default grid. The classic grid is not listed; it is generated
// from the configured rows and columns.
func BuiltinLayouts() []*Layout {
	return []*Layout{
		ParseLayout("pyramid", "Pyramid", []string{
			"..............####..............",
			"...........##########...........",
			"........################........",
			".....######################.....",
			"..############################..",
			"################################",
		}),

		ParseLayout("checker", "Checkerboard", []string{
			"#.#.#.#.#.#.#.#.#.#.#.#.#.#.#.#.",
			".#.#.#.#.#.#.#.#.#.#.#.#.#.#.#.#",
			"#.#.#.#.#.#.#.#.#.#.#.#.#.#.#.#.",
			".#.#.#.#.#.#.#.#.#.#.#.#.#.#.#.#",
			"#.#.#.#.#.#.#.#.#.#.#.#.#.#.#.#.",
		}),

		ParseLayout("rainbow", "Rainbow", []string{
			"11111111111111111111111111111111",
			"22222222222222222222222222222222",
			"33333333333333333333333333333333",
			"44444444444444444444444444444444",
			"55555555555555555555555555555555",
			"66666666666666666666666666666666",
			"77777777777777777777777777777777",
		}),

		ParseLayout("diamond", "Diamond", []string{
			"...............##...............",
			".............######.............",
			"...........##########...........",
			".........##############.........",
			"...........##########...........",
			".............######.............",
			"...............##...............",
		}),

		ParseLayout("invaders", "Invaders", []string{
			"...4.....4.......4.....4........",
			"....4...4.........4...4.........",
			"...4444444.......4444444........",
			"..44.444.44.....44.444.44.......",
			".44444444444...44444444444......",
			".4.4444444.4...4.4444444.4......",
			".4.4.....4.4...4.4.....4.4......",
		}),
	}
}

// LayoutByID returns the layout for id. The classic layout is sized from cfg.
func LayoutByID(id string, cfg config.BlocksConfig) (*Layout, bool) {
	if id == ClassicLayoutID || id == "" {
		return FullLayout(cfg.Rows, cfg.Columns), true
	}
	for _, l := range BuiltinLayouts() {
		if l.ID == id {
			return l, true
		}
	}
	return nil, false
}
