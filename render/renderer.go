// Package render keeps the on-screen terminal content synchronized with a
// surface grid by diffing against a private snapshot of what was last
// written and emitting minimal ANSI positioning and glyph commands.
package render

import (
	"bufio"
	"io"

	"github.com/pkg/errors"

	"github.com/lixenwraith/slate/surface"
	"github.com/lixenwraith/slate/terminal"
)

// invalidCell can never equal a real grid cell, forcing a repaint.
var invalidCell = surface.Cell{Width: -1}

type pendingCell struct {
	idx  int
	cell surface.Cell
}

// Renderer diffs a grid against the last rendered snapshot and writes the
// difference to the terminal.
//
// The snapshot and the caller's dirty set are updated only after a
// successful flush: on a write error both are left untouched, so the next
// render retries the same diff.
type Renderer struct {
	out io.Writer
	w   *bufio.Writer

	snapshot []surface.Cell
	rows     int
	cols     int

	// Cells rendered this cycle, committed to the snapshot on success
	pending []pendingCell

	// Terminal cursor tracking for run coalescing
	curRow, curCol int
	curValid       bool

	// Last emitted SGR state
	lastAttr  surface.Attr
	attrValid bool

	// Where the visible cursor was last parked
	parkRow, parkCol int
	parkValid        bool
}

// New creates a renderer writing to out.
func New(out io.Writer) *Renderer {
	return &Renderer{
		out: out,
		w:   bufio.NewWriterSize(out, 65536),
	}
}

// Render synchronizes the terminal with the grid, restricted to the dirty
// set (which covers everything after a resize or clear), then parks the
// visible terminal cursor at cur's position. With no intervening edits a
// second call emits nothing.
func (r *Renderer) Render(g *surface.Grid, cur *surface.Cursor, dirty *surface.DirtySet) error {
	rows, cols := g.Size()
	if rows != r.rows || cols != r.cols {
		r.reshape(rows, cols)
	}

	w := r.w
	r.pending = r.pending[:0]

	for row := 0; row < rows; row++ {
		col := 0
		for col < cols {
			c, idx, stale := r.cellState(g, dirty, row, col)
			if !stale {
				col++
				continue
			}
			if c.IsContinuation() {
				// Covered by its head glyph's two-column write; no
				// bytes of its own
				r.pending = append(r.pending, pendingCell{idx, c})
				col++
				continue
			}

			// Position once per contiguous dirty run
			if !r.curValid || r.curRow != row || r.curCol != col {
				if r.curValid && r.curRow == row && col > r.curCol {
					terminal.WriteCursorForward(w, col-r.curCol)
				} else {
					terminal.WriteCursorPos(w, row, col)
				}
				r.curRow, r.curCol, r.curValid = row, col, true
			}

			// Write the run
			for col < cols {
				c, idx, stale = r.cellState(g, dirty, row, col)
				if !stale {
					break
				}
				if c.IsContinuation() {
					r.pending = append(r.pending, pendingCell{idx, c})
					col++
					continue
				}

				r.writeAttr(w, c.Attr)
				if c.Rune < 0x80 {
					w.WriteByte(byte(c.Rune))
				} else {
					w.WriteRune(c.Rune)
				}
				r.pending = append(r.pending, pendingCell{idx, c})
				r.curCol += c.Width
				col++
			}
		}
	}

	wrote := len(r.pending) > 0
	crow, ccol := cur.Position()

	if !wrote && r.parkValid && r.parkRow == crow && r.parkCol == ccol {
		// Nothing differs and the cursor is already parked. Still a
		// completed render: drop marks whose cells matched the snapshot
		dirty.Clear()
		return nil
	}

	if wrote && r.lastAttr != surface.AttrNone {
		r.writeAttr(w, surface.AttrNone)
	}
	terminal.WriteCursorPos(w, crow, ccol)
	r.curRow, r.curCol, r.curValid = crow, ccol, true

	if err := w.Flush(); err != nil {
		// The terminal may hold a partial update; distrust all cached
		// positioning but keep snapshot and dirty set for the retry
		r.w.Reset(r.out)
		r.curValid = false
		r.attrValid = false
		r.parkValid = false
		return errors.Wrap(err, "render: write to terminal")
	}

	for _, p := range r.pending {
		r.snapshot[p.idx] = p.cell
	}
	r.pending = r.pending[:0]
	dirty.Clear()
	r.parkRow, r.parkCol, r.parkValid = crow, ccol, true
	return nil
}

// cellState fetches the grid cell at (row, col) and reports whether it is
// marked dirty and differs from the snapshot.
func (r *Renderer) cellState(g *surface.Grid, dirty *surface.DirtySet, row, col int) (surface.Cell, int, bool) {
	idx := row*r.cols + col
	c, err := g.Get(row, col)
	if err != nil {
		return c, idx, false
	}
	if !dirty.Has(surface.Coord{Row: row, Col: col}) {
		return c, idx, false
	}
	return c, idx, !c.Equal(r.snapshot[idx])
}

// writeAttr emits an SGR sequence when the attribute state changes.
func (r *Renderer) writeAttr(w *bufio.Writer, attr surface.Attr) {
	if r.attrValid && attr == r.lastAttr {
		return
	}
	w.WriteString("\x1b[0")
	if attr&surface.AttrBold != 0 {
		w.WriteString(";1")
	}
	if attr&surface.AttrDim != 0 {
		w.WriteString(";2")
	}
	if attr&surface.AttrUnderline != 0 {
		w.WriteString(";4")
	}
	if attr&surface.AttrReverse != 0 {
		w.WriteString(";7")
	}
	w.WriteByte('m')
	r.lastAttr = attr
	r.attrValid = true
}

// reshape resizes the snapshot to new grid dimensions. Every cell becomes
// invalid so the full repaint the resize marked dirty re-emits everything.
func (r *Renderer) reshape(rows, cols int) {
	size := rows * cols
	if cap(r.snapshot) < size {
		r.snapshot = make([]surface.Cell, size)
	} else {
		r.snapshot = r.snapshot[:size]
	}
	for i := range r.snapshot {
		r.snapshot[i] = invalidCell
	}
	r.rows = rows
	r.cols = cols
	r.curValid = false
	r.attrValid = false
	r.parkValid = false
}
