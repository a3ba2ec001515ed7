package surface

import (
	"github.com/pkg/errors"
)

// Coord addresses a single cell as (row, col).
type Coord struct {
	Row int
	Col int
}

// Grid is the rows×cols arrangement of cells matching the terminal viewport.
// All rows share the same column count. Cells are stored row-major.
type Grid struct {
	cells []Cell
	rows  int
	cols  int
}

// NewGrid creates a blank grid. Negative dimensions are treated as zero.
func NewGrid(rows, cols int) *Grid {
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}
	g := &Grid{
		cells: make([]Cell, rows*cols),
		rows:  rows,
		cols:  cols,
	}
	g.blankAll()
	return g
}

// Size returns the current dimensions.
func (g *Grid) Size() (rows, cols int) {
	return g.rows, g.cols
}

func (g *Grid) inBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

func (g *Grid) idx(row, col int) int {
	return row*g.cols + col
}

// Get returns the cell at (row, col).
func (g *Grid) Get(row, col int) (Cell, error) {
	if !g.inBounds(row, col) {
		return Cell{}, errors.Wrapf(ErrOutOfBounds, "get (%d,%d) in %dx%d", row, col, g.rows, g.cols)
	}
	return g.cells[g.idx(row, col)], nil
}

// Set places a glyph at (row, col) and returns the coordinates it touched.
//
// Writing over either half of an existing wide glyph blanks the whole pair
// first, so a continuation cell never survives without its head. A width-2
// glyph additionally claims the next column; at the last column it is
// rejected with ErrNoSpaceForWideGlyph and the grid is left unchanged.
func (g *Grid) Set(row, col int, glyph rune) ([]Coord, error) {
	if !g.inBounds(row, col) {
		return nil, errors.Wrapf(ErrOutOfBounds, "set (%d,%d) in %dx%d", row, col, g.rows, g.cols)
	}

	w := GlyphWidth(glyph)
	if w == 0 {
		return nil, errors.Wrapf(ErrInvalidGlyph, "set %q", glyph)
	}
	if w == 2 && col == g.cols-1 {
		return nil, errors.Wrapf(ErrNoSpaceForWideGlyph, "set %q at col %d of %d", glyph, col, g.cols)
	}

	touched := make([]Coord, 0, 4)
	touched = g.blankPair(row, col, touched)
	if w == 2 {
		touched = g.blankPair(row, col+1, touched)
	}

	g.cells[g.idx(row, col)] = Cell{Rune: glyph, Width: w}
	touched = appendCoord(touched, Coord{row, col})
	if w == 2 {
		g.cells[g.idx(row, col+1)] = ContinuationCell()
		touched = appendCoord(touched, Coord{row, col + 1})
	}
	return touched, nil
}

// blankPair blanks the cell at (row, col) and, when the cell is half of a
// wide glyph, its partner cell too. Touched coordinates are appended to dst.
func (g *Grid) blankPair(row, col int, dst []Coord) []Coord {
	c := g.cells[g.idx(row, col)]
	switch {
	case c.IsContinuation():
		if col > 0 && g.cells[g.idx(row, col-1)].IsWide() {
			g.cells[g.idx(row, col-1)] = BlankCell()
			dst = appendCoord(dst, Coord{row, col - 1})
		}
	case c.IsWide():
		if col+1 < g.cols && g.cells[g.idx(row, col+1)].IsContinuation() {
			g.cells[g.idx(row, col+1)] = BlankCell()
			dst = appendCoord(dst, Coord{row, col + 1})
		}
	}
	g.cells[g.idx(row, col)] = BlankCell()
	return appendCoord(dst, Coord{row, col})
}

// Clear blanks every cell and returns the full coordinate list.
func (g *Grid) Clear() []Coord {
	g.blankAll()
	return g.allCoords()
}

// Resize reallocates the grid to the new dimensions, copying the overlapping
// top-left region and blanking newly exposed cells. Content outside the new
// bounds is discarded without reflow. A wide glyph whose continuation column
// falls outside the new width is blanked rather than split. The returned
// coordinate list covers the entire new grid: the terminal must be fully
// repainted after a resize.
func (g *Grid) Resize(rows, cols int) []Coord {
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}

	old := g.cells
	oldRows, oldCols := g.rows, g.cols

	g.cells = make([]Cell, rows*cols)
	g.rows, g.cols = rows, cols
	g.blankAll()

	copyRows := min(oldRows, rows)
	copyCols := min(oldCols, cols)
	for r := 0; r < copyRows; r++ {
		copy(g.cells[r*cols:r*cols+copyCols], old[r*oldCols:r*oldCols+copyCols])
	}

	// Repair pairs broken by the width cut: a head at the new last column
	// lost its continuation, and a continuation in the first copied column
	// of a narrower source cannot occur (truncation is right-edge only),
	// but a continuation whose head was outside copyCols can never happen
	// either. Only the trailing head needs fixing.
	if cols > 0 && cols < oldCols {
		for r := 0; r < copyRows; r++ {
			if g.cells[g.idx(r, cols-1)].IsWide() {
				g.cells[g.idx(r, cols-1)] = BlankCell()
			}
		}
	}

	return g.allCoords()
}

func (g *Grid) blankAll() {
	for i := range g.cells {
		g.cells[i] = BlankCell()
	}
}

func (g *Grid) allCoords() []Coord {
	coords := make([]Coord, 0, g.rows*g.cols)
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			coords = append(coords, Coord{r, c})
		}
	}
	return coords
}

// appendCoord appends c unless it is already present. A wide write touches
// at most four cells, so the linear scan is cheaper than a set.
func appendCoord(dst []Coord, c Coord) []Coord {
	for _, have := range dst {
		if have == c {
			return dst
		}
	}
	return append(dst, c)
}
