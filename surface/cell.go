package surface

import (
	"github.com/mattn/go-runewidth"
)

// Blank is the glyph held by an unoccupied cell. Writing Blank through
// Grid.Set is the erase sentinel.
const Blank rune = ' '

// Attr is a per-cell display attribute bitmask. Reserved for styling;
// the renderer understands the bits below.
type Attr uint8

const (
	AttrNone      Attr = 0
	AttrBold      Attr = 1 << 0
	AttrDim       Attr = 1 << 1
	AttrUnderline Attr = 1 << 2
	AttrReverse   Attr = 1 << 3
)

// Cell is one terminal character position.
//
// A wide glyph occupies its own column plus a reserved continuation cell in
// the next column. The continuation cell holds no glyph of its own:
// Rune 0, Width 0.
type Cell struct {
	Rune  rune
	Width int
	Attr  Attr
}

// BlankCell returns an unoccupied cell.
func BlankCell() Cell {
	return Cell{Rune: Blank, Width: 1}
}

// ContinuationCell returns the reserved second column of a wide glyph.
func ContinuationCell() Cell {
	return Cell{}
}

// IsContinuation reports whether the cell is the second column of a wide glyph.
func (c Cell) IsContinuation() bool {
	return c.Rune == 0 && c.Width == 0
}

// IsWide reports whether the cell holds a glyph spanning two columns.
func (c Cell) IsWide() bool {
	return c.Width == 2
}

// IsBlank reports whether the cell holds no visible glyph.
func (c Cell) IsBlank() bool {
	return c.Rune == Blank
}

// Equal reports cell identity. Used by the renderer for diffing.
func (c Cell) Equal(other Cell) bool {
	return c.Rune == other.Rune && c.Width == other.Width && c.Attr == other.Attr
}

// GlyphWidth returns the display width of a glyph: 0 for control characters
// and zero-width runes, 1 for normal glyphs, 2 for wide (CJK etc.) glyphs.
func GlyphWidth(r rune) int {
	if r < 0x20 || r == 0x7f {
		return 0
	}
	return runewidth.RuneWidth(r)
}
