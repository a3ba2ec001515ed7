package editor

import (
	"github.com/pkg/errors"

	"github.com/lixenwraith/slate/render"
	"github.com/lixenwraith/slate/terminal"
)

// maxRenderRetries bounds how many times a failing render is retried with
// the same diff before the session is declared unrecoverable.
const maxRenderRetries = 3

// Run drives the session: paint the manual, then loop
// read → translate → apply → render until a quit event. The caller owns
// terminal Init/Fini; Run never leaves without returning.
func Run(term *terminal.Terminal, feedback Feedback) error {
	rows, cols := term.Size()

	ed := New(rows, cols)
	ed.SetFeedback(feedback)
	tr := NewTranslator()
	r := render.New(term.Output())

	ed.PaintManual()
	if err := renderRetry(r, ed); err != nil {
		return err
	}

	events := term.Events()
	for !ed.Done() {
		ev, ok := <-events
		if !ok {
			break
		}

		switch ev.Type {
		case terminal.EventClosed:
			return nil
		case terminal.EventError:
			return errors.Wrap(ev.Err, "read input")
		}

		if err := applyOne(ed, tr, term, ev); err != nil {
			return err
		}

		// Drain whatever else already arrived before paying for a render,
		// so pasted bursts hit the terminal as one batch
	drain:
		for !ed.Done() {
			select {
			case ev, ok := <-events:
				if !ok {
					break drain
				}
				if ev.Type == terminal.EventClosed {
					return nil
				}
				if ev.Type == terminal.EventError {
					return errors.Wrap(ev.Err, "read input")
				}
				if err := applyOne(ed, tr, term, ev); err != nil {
					return err
				}
			default:
				break drain
			}
		}

		if err := renderRetry(r, ed); err != nil {
			return err
		}
	}
	return nil
}

// applyOne translates and applies a single terminal event, switching the
// visible cursor shape on mode transitions.
func applyOne(ed *Editor, tr *Translator, term *terminal.Terminal, ev terminal.Event) error {
	_, col := ed.Cursor().Position()
	e := tr.Translate(ev, col)

	switch e.Kind {
	case KindEnterInsert:
		if err := term.SetCursorShape(terminal.CursorShapeBar); err != nil {
			return err
		}
	case KindExitInsert:
		if err := term.SetCursorShape(terminal.CursorShapeBlock); err != nil {
			return err
		}
	}

	return ed.Apply(e)
}

// renderRetry renders, retrying the identical diff a bounded number of
// times. The renderer leaves its snapshot and the dirty set untouched on
// failure, so each retry re-emits the same bytes.
func renderRetry(r *render.Renderer, ed *Editor) error {
	var err error
	for attempt := 0; attempt < maxRenderRetries; attempt++ {
		err = r.Render(ed.Grid(), ed.Cursor(), ed.Dirty())
		if err == nil {
			return nil
		}
	}
	return errors.Wrap(err, "render failed repeatedly")
}
