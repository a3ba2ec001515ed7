package terminal

import (
	"unicode/utf8"
)

// EventType distinguishes input event categories.
type EventType uint8

const (
	EventKey EventType = iota
	EventResize
	EventError  // read error
	EventClosed // input closed
)

// Event is one decoded terminal input event.
type Event struct {
	Type EventType
	Key  Key
	Rune rune
	Rows int // EventResize
	Cols int // EventResize
	Err  error
}

// Decoder assembles a raw terminal byte stream into key events.
//
// Decoding is restartable: an escape or UTF-8 sequence left incomplete at
// the end of one Feed is buffered and completed by the next, never emitted
// partially. Unrecognized but well-formed sequences are consumed and
// dropped silently.
type Decoder struct {
	buf []byte
}

// NewDecoder creates a decoder with a preallocated assembly buffer.
func NewDecoder() *Decoder {
	return &Decoder{buf: make([]byte, 0, 256)}
}

// Feed appends raw bytes and returns the events they complete. The returned
// slice is nil when no event was completed.
func (d *Decoder) Feed(p []byte) []Event {
	d.buf = append(d.buf, p...)

	var events []Event
	consumed := 0
	n := len(d.buf)

	for consumed < n {
		adv, ev, ok := d.decodeOne(d.buf[consumed:])
		if adv == 0 {
			break // incomplete sequence, wait for more data
		}
		consumed += adv
		if ok {
			events = append(events, ev)
		}
	}

	if consumed > 0 {
		if consumed >= n {
			d.buf = d.buf[:0]
		} else {
			copy(d.buf, d.buf[consumed:])
			d.buf = d.buf[:n-consumed]
		}
	}
	return events
}

// FlushPending resolves bytes the decoder is holding for a possible
// continuation. Called on a read timeout: a lone buffered ESC becomes a
// standalone Escape key press. Any other partial sequence stays buffered.
func (d *Decoder) FlushPending() []Event {
	if len(d.buf) == 1 && d.buf[0] == 0x1b {
		d.buf = d.buf[:0]
		return []Event{{Type: EventKey, Key: KeyEscape}}
	}
	return nil
}

// decodeOne decodes the first event in data. It returns the bytes consumed
// (0 when data holds an incomplete sequence) and whether an event was
// produced; swallowed sequences consume bytes without producing one.
func (d *Decoder) decodeOne(data []byte) (int, Event, bool) {
	b := data[0]

	// Fast path: printable ASCII
	if b >= 0x20 && b < 0x7f {
		return 1, Event{Type: EventKey, Key: KeyRune, Rune: rune(b)}, true
	}

	if b == 0x1b {
		return d.decodeEscape(data)
	}

	if b < 0x20 {
		ev := decodeControl(b)
		return 1, ev, ev.Key != KeyNone
	}

	if b == 0x7f {
		return 1, Event{Type: EventKey, Key: KeyBackspace}, true
	}

	// UTF-8 multibyte
	seqLen := utf8SeqLen(b)
	if seqLen == 0 {
		return 1, Event{}, false // invalid start byte, skip
	}
	if len(data) < seqLen {
		return 0, Event{}, false // wait for the rest
	}
	r, size := utf8.DecodeRune(data[:seqLen])
	if r == utf8.RuneError && size <= 1 {
		return 1, Event{}, false
	}
	return size, Event{Type: EventKey, Key: KeyRune, Rune: r}, true
}

// decodeEscape handles ESC-introduced sequences. Returns 0 consumed while
// the sequence may still be completed by further input.
func (d *Decoder) decodeEscape(data []byte) (int, Event, bool) {
	if len(data) < 2 {
		return 0, Event{}, false
	}

	switch data[1] {
	case 0x1b:
		// ESC ESC: emit one Escape, keep the second as a fresh prefix
		return 1, Event{Type: EventKey, Key: KeyEscape}, true
	case '[':
		return d.decodeCSI(data)
	case 'O':
		return d.decodeSS3(data)
	}

	// ESC + anything else is an Alt-modified key. Slate binds none,
	// so consume and drop.
	return 2, Event{}, false
}

// decodeCSI scans "ESC [ params terminator". Unknown sequences with valid
// syntax are consumed whole so their bytes cannot leak in as typed glyphs.
func (d *Decoder) decodeCSI(data []byte) (int, Event, bool) {
	if len(data) < 3 {
		return 0, Event{}, false
	}

	maxScan := len(data)
	if maxScan > 16 {
		maxScan = 16
	}

	end := 2
	for end < maxScan {
		b := data[end]
		if isCSITerminator(b) {
			end++
			if key, ok := lookupCSI(data[2:end]); ok {
				return end, Event{Type: EventKey, Key: key}, true
			}
			return end, Event{}, false
		}
		if b < 0x20 || b > 0x3f {
			// Malformed parameter byte: drop the introducer and resync
			return 2, Event{}, false
		}
		end++
	}

	if end >= 16 {
		// Oversized garbage, abandon the sequence
		return end, Event{}, false
	}
	return 0, Event{}, false // incomplete
}

func isCSITerminator(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z') || b == '~'
}

// decodeSS3 scans "ESC O x". Always three bytes; unknown finals are dropped.
func (d *Decoder) decodeSS3(data []byte) (int, Event, bool) {
	if len(data) < 3 {
		return 0, Event{}, false
	}
	if key, ok := lookupSS3(data[2:3]); ok {
		return 3, Event{Type: EventKey, Key: key}, true
	}
	return 3, Event{}, false
}

// decodeControl maps C0 control bytes to keys. Unbound controls decode to
// KeyNone and are dropped by the caller.
func decodeControl(b byte) Event {
	switch b {
	case 0x03:
		return Event{Type: EventKey, Key: KeyCtrlC}
	case 0x08:
		return Event{Type: EventKey, Key: KeyBackspace}
	case 0x09:
		return Event{Type: EventKey, Key: KeyTab}
	case 0x0a, 0x0d:
		return Event{Type: EventKey, Key: KeyEnter}
	case 0x0c:
		return Event{Type: EventKey, Key: KeyCtrlL}
	case 0x1b:
		return Event{Type: EventKey, Key: KeyEscape}
	}
	return Event{Type: EventKey, Key: KeyNone}
}

// utf8SeqLen returns the expected UTF-8 sequence length from a start byte,
// 0 if the byte cannot start a sequence.
func utf8SeqLen(b byte) int {
	switch {
	case b < 0x80:
		return 1
	case b&0xe0 == 0xc0:
		return 2
	case b&0xf0 == 0xe0:
		return 3
	case b&0xf8 == 0xf0:
		return 4
	}
	return 0
}
