package editor

import (
	"github.com/lixenwraith/slate/terminal"
)

// Mode is the modal editing state.
type Mode uint8

const (
	// ModeNormal interprets keys as commands (vi-flavored movement)
	ModeNormal Mode = iota

	// ModeInsert interprets printable keys as glyphs to place
	ModeInsert
)

// Translator converts terminal input events into editing events according
// to the active mode. It owns the mode state and the column where insert
// mode was entered, which Enter returns to.
type Translator struct {
	mode        Mode
	entranceCol int
}

// NewTranslator starts in normal mode.
func NewTranslator() *Translator {
	return &Translator{mode: ModeNormal}
}

// Mode returns the current modal state.
func (t *Translator) Mode() Mode {
	return t.mode
}

// Translate maps one terminal event to an editing event. cursorCol is the
// current cursor column, recorded as the entrance column when insert mode
// is entered. Unbound input translates to KindNone and is dropped.
func (t *Translator) Translate(ev terminal.Event, cursorCol int) Event {
	switch ev.Type {
	case terminal.EventResize:
		return Event{Kind: KindResize, Rows: ev.Rows, Cols: ev.Cols}
	case terminal.EventKey:
		// fall through to key handling
	default:
		return Event{Kind: KindNone}
	}

	// Bindings shared by both modes
	switch ev.Key {
	case terminal.KeyCtrlC:
		return Event{Kind: KindQuit}
	case terminal.KeyCtrlL:
		return Event{Kind: KindRedraw}
	case terminal.KeyUp:
		return Event{Kind: KindMove, DRow: -1}
	case terminal.KeyDown:
		return Event{Kind: KindMove, DRow: 1}
	case terminal.KeyLeft:
		return Event{Kind: KindMove, DCol: -1}
	case terminal.KeyRight:
		return Event{Kind: KindMove, DCol: 1}
	case terminal.KeyHome:
		return Event{Kind: KindMove, DCol: -edgeJump}
	case terminal.KeyEnd:
		return Event{Kind: KindMove, DCol: edgeJump}
	case terminal.KeyPageUp:
		return Event{Kind: KindMove, DRow: -10}
	case terminal.KeyPageDown:
		return Event{Kind: KindMove, DRow: 10}
	case terminal.KeyDelete:
		return Event{Kind: KindErase}
	}

	if t.mode == ModeInsert {
		return t.translateInsert(ev)
	}
	return t.translateNormal(ev, cursorCol)
}

func (t *Translator) translateNormal(ev terminal.Event, cursorCol int) Event {
	if ev.Key != terminal.KeyRune {
		return Event{Kind: KindNone}
	}
	switch ev.Rune {
	case 'q':
		return Event{Kind: KindQuit}
	case 'h':
		return Event{Kind: KindMove, DCol: -1}
	case 'l':
		return Event{Kind: KindMove, DCol: 1}
	case 'k':
		return Event{Kind: KindMove, DRow: -1}
	case 'j':
		return Event{Kind: KindMove, DRow: 1}
	case 'b':
		return Event{Kind: KindMove, DCol: -10}
	case 'e':
		return Event{Kind: KindMove, DCol: 10}
	case 'c':
		return Event{Kind: KindClear}
	case 'i':
		t.mode = ModeInsert
		t.entranceCol = cursorCol
		return Event{Kind: KindEnterInsert}
	}
	return Event{Kind: KindNone}
}

func (t *Translator) translateInsert(ev terminal.Event) Event {
	switch ev.Key {
	case terminal.KeyEscape:
		t.mode = ModeNormal
		return Event{Kind: KindExitInsert}
	case terminal.KeyEnter:
		return Event{Kind: KindReturn, Col: t.entranceCol}
	case terminal.KeyBackspace:
		return Event{Kind: KindErase}
	case terminal.KeyRune:
		return Event{Kind: KindType, Glyph: ev.Rune}
	}
	return Event{Kind: KindNone}
}
