package terminal

import (
	"io"
	"os"
	"sync"

	"github.com/pkg/errors"
)

var errClosed = errors.New("terminal: input closed")

// CursorShape selects the visible terminal cursor style (DECSCUSR).
type CursorShape uint8

const (
	CursorShapeDefault CursorShape = iota
	CursorShapeBlock
	CursorShapeBar
)

// Terminal owns raw-mode lifecycle, the input event stream, and the
// buffered output writer the renderer draws through.
//
// Resize notifications arrive asynchronously from SIGWINCH but are merged
// into the same event channel as key input, so consumers see one ordered
// stream and never handle a resize mid-render.
type Terminal struct {
	backend Backend
	input   *inputReader

	resizeCh chan Event
	eventCh  chan Event
	muxStop  chan struct{}
	muxDone  chan struct{}

	mu          sync.Mutex
	initialized bool
	finalized   bool
}

// New creates a Terminal over the platform backend.
func New() *Terminal {
	return NewWithBackend(newBackend())
}

// NewWithBackend creates a Terminal over an explicit backend. Tests use
// this to substitute a fake.
func NewWithBackend(b Backend) *Terminal {
	return &Terminal{
		backend:  b,
		resizeCh: make(chan Event, 1),
		eventCh:  make(chan Event, 256),
		muxStop:  make(chan struct{}),
		muxDone:  make(chan struct{}),
	}
}

// Init enters raw mode and the alternate screen, disables auto-wrap, and
// starts the input machinery. Idempotent.
func (t *Terminal) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.initialized {
		return nil
	}

	if err := t.backend.Init(); err != nil {
		return errors.Wrap(err, "terminal init")
	}

	t.backend.SetResizeHandler(func(rows, cols int) {
		ev := Event{Type: EventResize, Rows: rows, Cols: cols}
		// Non-blocking: drop the stale event so the latest size wins
		select {
		case t.resizeCh <- ev:
		default:
			select {
			case <-t.resizeCh:
			default:
			}
			select {
			case t.resizeCh <- ev:
			default:
			}
		}
	})

	t.backend.Write(csiAltScreenEnter)
	t.backend.Write(csiAutoWrapOff)
	t.backend.Write(csiClear)
	t.backend.Write(csiCursorShow)
	t.backend.Write(csiCursorSteadyBlock)

	t.input = newInputReader(t.backend)
	t.input.start()
	go t.muxLoop()

	t.initialized = true
	return nil
}

// Fini restores the terminal. Safe to call multiple times and on every
// exit path.
func (t *Terminal) Fini() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized || t.finalized {
		return
	}

	close(t.muxStop)
	<-t.muxDone
	t.input.stop()

	t.backend.Write(csiCursorDefault)
	t.backend.Write(csiSGR0)
	t.backend.Write(csiAltScreenExit)
	// Re-enable auto-wrap after leaving the alt screen so the main buffer
	// keeps its normal behavior
	t.backend.Write(csiAutoWrapOn)

	t.backend.Fini()
	t.finalized = true
}

// Size returns the current viewport dimensions.
func (t *Terminal) Size() (rows, cols int) {
	return t.backend.Size()
}

// Events returns the merged input/resize event stream. The channel closes
// after the input side reports EventClosed or EventError.
func (t *Terminal) Events() <-chan Event {
	return t.eventCh
}

// Output returns the writer the renderer emits through. The renderer does
// its own buffering, so this is the raw backend stream.
func (t *Terminal) Output() io.Writer {
	return t.backend
}

// SetCursorShape switches the visible cursor style immediately.
func (t *Terminal) SetCursorShape(shape CursorShape) error {
	var seq []byte
	switch shape {
	case CursorShapeBar:
		seq = csiCursorSteadyBar
	case CursorShapeBlock:
		seq = csiCursorSteadyBlock
	default:
		seq = csiCursorDefault
	}
	_, err := t.backend.Write(seq)
	return errors.Wrap(err, "set cursor shape")
}

// muxLoop merges decoded input and resize notifications into eventCh,
// preserving a single ordered stream.
func (t *Terminal) muxLoop() {
	defer close(t.muxDone)
	defer close(t.eventCh)

	for {
		select {
		case <-t.muxStop:
			return
		case ev := <-t.resizeCh:
			select {
			case t.eventCh <- ev:
			case <-t.muxStop:
				return
			}
		case ev, ok := <-t.input.events():
			if !ok {
				return
			}
			select {
			case t.eventCh <- ev:
			case <-t.muxStop:
				return
			}
			if ev.Type == EventClosed || ev.Type == EventError {
				return
			}
		}
	}
}

// EmergencyReset restores a sane terminal from panic paths where Fini
// cannot run normally.
func EmergencyReset(w io.Writer) {
	w.Write(csiCursorShow)
	w.Write(csiCursorDefault)
	w.Write(csiAltScreenExit)
	w.Write(csiSGR0)
	w.Write(csiAutoWrapOn)
	w.Write(csiRIS)

	if f, ok := w.(*os.File); ok {
		f.Sync()
	}

	resetTerminalMode()
}
