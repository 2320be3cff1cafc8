package core

import (
	"strings"
	"unicode/utf8"
)

// Cell is a single character position on the screen.
type Cell struct {
	Rune  rune
	Color Color
}

var blankCell = Cell{Rune: ' ', Color: ColorDefault}

// Screen is a character buffer the simulation renders into. Platforms turn
// it into terminal output; the simulation never touches a terminal itself.
type Screen struct {
	width, height int
	cells         []Cell // row-major
}

// NewScreen creates a blank screen of the given size in cells.
func NewScreen(width, height int) *Screen {
	s := &Screen{}
	s.Resize(width, height)
	return s
}

// Width returns the screen width in characters.
func (s *Screen) Width() int { return s.width }

// Height returns the screen height in characters.
func (s *Screen) Height() int { return s.height }

// Resize changes the screen size and blanks it. Content is not kept since
// every frame is drawn from scratch.
func (s *Screen) Resize(width, height int) {
	if s.cells != nil && width == s.width && height == s.height {
		return
	}
	s.width, s.height = max(width, 0), max(height, 0)
	s.cells = make([]Cell, s.width*s.height)
	s.Clear()
}

// Clear blanks every cell.
func (s *Screen) Clear() {
	for i := range s.cells {
		s.cells[i] = blankCell
	}
}

func (s *Screen) index(x, y int) (int, bool) {
	if x < 0 || y < 0 || x >= s.width || y >= s.height {
		return 0, false
	}
	return y*s.width + x, true
}

// Set places a default-colored rune. Positions off the screen are ignored.
func (s *Screen) Set(x, y int, r rune) {
	s.SetCell(x, y, Cell{Rune: r, Color: ColorDefault})
}

// SetCell places a cell. Positions off the screen are ignored.
func (s *Screen) SetCell(x, y int, c Cell) {
	if i, ok := s.index(x, y); ok {
		s.cells[i] = c
	}
}

// Get returns the rune at (x, y), or a space off the screen.
func (s *Screen) Get(x, y int) rune {
	return s.GetCell(x, y).Rune
}

// GetCell returns the cell at (x, y), or a blank cell off the screen.
func (s *Screen) GetCell(x, y int) Cell {
	if i, ok := s.index(x, y); ok {
		return s.cells[i]
	}
	return blankCell
}

// DrawText writes text left to right from (x, y), clipped at the edges.
func (s *Screen) DrawText(x, y int, text string) {
	for _, r := range text {
		s.Set(x, y, r)
		x++
	}
}

// DrawTextCentered writes text centered on row y.
func (s *Screen) DrawTextCentered(y int, text string) {
	s.DrawText((s.width-utf8.RuneCountInString(text))/2, y, text)
}

// FillRect paints every cell of r with fill in the given color.
func (s *Screen) FillRect(r Rect, fill rune, color Color) {
	c := Cell{Rune: fill, Color: color}
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			s.SetCell(x, y, c)
		}
	}
}

// String returns the runes of every row joined by newlines, colors dropped.
func (s *Screen) String() string {
	rows := make([]string, s.height)
	for y := range rows {
		rows[y] = s.Row(y)
	}
	return strings.Join(rows, "\n")
}

// Row returns row y as plain text; rows off the screen are blank.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	var sb strings.Builder
	for _, c := range s.cells[y*s.width : (y+1)*s.width] {
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}
