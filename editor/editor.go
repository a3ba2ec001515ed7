// Package editor applies editing events to the surface grid and drives the
// read→translate→apply→render control loop.
package editor

import (
	"github.com/pkg/errors"

	"github.com/lixenwraith/slate/surface"
)

// Feedback receives a signal when an edit is rejected (invalid glyph, wide
// glyph at the last column). Implemented by Bell; nil disables feedback.
type Feedback interface {
	Ring()
}

// Editor owns the surface state — grid, cursor, dirty set — and applies
// editing events to it. Single-goroutine use only; the control loop is the
// sole owner.
type Editor struct {
	grid   *surface.Grid
	cursor *surface.Cursor
	dirty  *surface.DirtySet

	feedback Feedback
	done     bool
}

// New creates an editor for a rows×cols viewport.
func New(rows, cols int) *Editor {
	return &Editor{
		grid:   surface.NewGrid(rows, cols),
		cursor: surface.NewCursor(rows, cols),
		dirty:  surface.NewDirtySet(),
	}
}

// SetFeedback installs rejected-edit feedback. Nil disables it.
func (e *Editor) SetFeedback(f Feedback) {
	e.feedback = f
}

// Grid exposes the surface grid for rendering.
func (e *Editor) Grid() *surface.Grid { return e.grid }

// Cursor exposes the cursor for rendering.
func (e *Editor) Cursor() *surface.Cursor { return e.cursor }

// Dirty exposes the dirty set for rendering.
func (e *Editor) Dirty() *surface.DirtySet { return e.dirty }

// Done reports whether a quit event has been applied.
func (e *Editor) Done() bool { return e.done }

// Apply dispatches one editing event. Rejected edits (invalid glyph, no
// space for a wide glyph) are recovered as no-ops with optional feedback;
// every other error is a programming defect and surfaces to the caller.
func (e *Editor) Apply(ev Event) error {
	switch ev.Kind {
	case KindType:
		return e.typeGlyph(ev.Glyph)

	case KindErase:
		row, col := e.cursor.Position()
		touched, err := e.grid.Set(row, col, surface.Blank)
		if err != nil {
			return errors.Wrap(err, "erase")
		}
		e.dirty.MarkCoords(touched)

	case KindMove:
		e.cursor.MoveBy(ev.DRow, ev.DCol)

	case KindReturn:
		row, _ := e.cursor.Position()
		e.cursor.MoveTo(row+1, ev.Col)

	case KindClear:
		e.grid.Clear()
		e.dirty.MarkAll()

	case KindResize:
		// The resize returns the whole new grid as dirty; collapse it to
		// the full-repaint flag rather than holding every coordinate
		e.grid.Resize(ev.Rows, ev.Cols)
		e.dirty.MarkAll()
		e.cursor.SetBounds(ev.Rows, ev.Cols)

	case KindRedraw:
		e.dirty.MarkAll()

	case KindQuit:
		e.done = true

	case KindEnterInsert, KindExitInsert, KindNone:
		// no surface state to touch
	}
	return nil
}

// typeGlyph places a glyph at the cursor and advances it by the glyph's
// width, wrapping to the start of the next row at the line end and clamping
// at the very last cell.
func (e *Editor) typeGlyph(glyph rune) error {
	row, col := e.cursor.Position()

	touched, err := e.grid.Set(row, col, glyph)
	switch {
	case err == nil:
	case errors.Is(err, surface.ErrInvalidGlyph), errors.Is(err, surface.ErrNoSpaceForWideGlyph):
		e.ring()
		return nil
	default:
		return errors.Wrap(err, "type")
	}
	e.dirty.MarkCoords(touched)

	rows, cols := e.grid.Size()
	nextCol := col + surface.GlyphWidth(glyph)
	if nextCol >= cols {
		if row+1 < rows {
			e.cursor.MoveTo(row+1, 0)
		} else {
			e.cursor.MoveTo(row, cols-1)
		}
		return nil
	}
	e.cursor.MoveTo(row, nextCol)
	return nil
}

func (e *Editor) ring() {
	if e.feedback != nil {
		e.feedback.Ring()
	}
}
