package breakout

import "github.com/vovakirdan/tui-breakout/internal/core"

// Block is a static destructible obstacle. Blocks never change once built;
// being hit removes them from the live set.
type Block struct {
	rect  core.Rect
	color core.Color

	// Grid position in the layout, used only for rendering.
	Row, Col int
}

// NewBlock creates a block covering rect.
func NewBlock(rect core.Rect, color core.Color, row, col int) *Block {
	return &Block{rect: rect, color: color, Row: row, Col: col}
}

// BoundingBox implements core.Entity.
func (b *Block) BoundingBox() core.Rect {
	return b.rect
}

// Visual implements core.Entity.
func (b *Block) Visual() core.Color {
	return b.color
}

// BlockSet holds the live blocks in creation order.
type BlockSet struct {
	blocks []*Block
}

// NewBlockSet creates a set from the given blocks.
func NewBlockSet(blocks []*Block) *BlockSet {
	return &BlockSet{blocks: blocks}
}

// Len returns the number of live blocks.
func (s *BlockSet) Len() int {
	return len(s.blocks)
}

// All returns the live blocks. The slice must not be modified.
func (s *BlockSet) All() []*Block {
	return s.blocks
}

// RemoveOverlapping removes every block that overlaps r and returns them.
// All hits are resolved in one pass, not just the first.
func (s *BlockSet) RemoveOverlapping(r core.Rect) []*Block {
	var dead []*Block
	kept := s.blocks[:0]
	for _, b := range s.blocks {
		if b.rect.Intersects(r) {
			dead = append(dead, b)
			continue
		}
		kept = append(kept, b)
	}
	// Drop references held past the new length.
	for i := len(kept); i < len(s.blocks); i++ {
		s.blocks[i] = nil
	}
	s.blocks = kept
	return dead
}
