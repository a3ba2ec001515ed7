package terminal

import "testing"

func TestDecoderPrintable(t *testing.T) {
	d := NewDecoder()
	events := d.Feed([]byte("hi!"))

	want := []rune{'h', 'i', '!'}
	if len(events) != len(want) {
		t.Fatalf("Expected %d events, got %d", len(want), len(events))
	}
	for i, r := range want {
		if events[i].Key != KeyRune || events[i].Rune != r {
			t.Errorf("Expected KeyRune %q at %d, got key=%d rune=%q", r, i, events[i].Key, events[i].Rune)
		}
	}
}

func TestDecoderControlKeys(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
		want  Key
	}{
		{"Ctrl-C", []byte{0x03}, KeyCtrlC},
		{"Ctrl-L", []byte{0x0c}, KeyCtrlL},
		{"Tab", []byte{0x09}, KeyTab},
		{"Carriage return", []byte{0x0d}, KeyEnter},
		{"Line feed", []byte{0x0a}, KeyEnter},
		{"Backspace BS", []byte{0x08}, KeyBackspace},
		{"Backspace DEL", []byte{0x7f}, KeyBackspace},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDecoder()
			events := d.Feed(tt.input)
			if len(events) != 1 {
				t.Fatalf("Expected 1 event, got %d", len(events))
			}
			if events[0].Key != tt.want {
				t.Errorf("Expected key %d, got %d", tt.want, events[0].Key)
			}
		})
	}
}

func TestDecoderUnboundControlDropped(t *testing.T) {
	d := NewDecoder()
	// Ctrl-A and Ctrl-Z are unbound
	events := d.Feed([]byte{0x01, 0x1a, 'x'})
	if len(events) != 1 {
		t.Fatalf("Expected 1 event, got %d", len(events))
	}
	if events[0].Key != KeyRune || events[0].Rune != 'x' {
		t.Errorf("Expected the x keeping through, got %+v", events[0])
	}
}

func TestDecoderCSIKeys(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Key
	}{
		{"Up", "\x1b[A", KeyUp},
		{"Down", "\x1b[B", KeyDown},
		{"Right", "\x1b[C", KeyRight},
		{"Left", "\x1b[D", KeyLeft},
		{"Home", "\x1b[H", KeyHome},
		{"End", "\x1b[F", KeyEnd},
		{"Home tilde", "\x1b[1~", KeyHome},
		{"Delete", "\x1b[3~", KeyDelete},
		{"PageUp", "\x1b[5~", KeyPageUp},
		{"PageDown", "\x1b[6~", KeyPageDown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDecoder()
			events := d.Feed([]byte(tt.input))
			if len(events) != 1 {
				t.Fatalf("Expected 1 event, got %d", len(events))
			}
			if events[0].Key != tt.want {
				t.Errorf("Expected key %d, got %d", tt.want, events[0].Key)
			}
		})
	}
}

func TestDecoderSS3Keys(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Key
	}{
		{"Up", "\x1bOA", KeyUp},
		{"Left", "\x1bOD", KeyLeft},
		{"Keypad enter", "\x1bOM", KeyEnter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDecoder()
			events := d.Feed([]byte(tt.input))
			if len(events) != 1 {
				t.Fatalf("Expected 1 event, got %d", len(events))
			}
			if events[0].Key != tt.want {
				t.Errorf("Expected key %d, got %d", tt.want, events[0].Key)
			}
		})
	}
}

func TestDecoderSplitEscapeSequence(t *testing.T) {
	// An arrow key arriving one byte per read must decode once, at the end
	d := NewDecoder()

	if events := d.Feed([]byte{0x1b}); len(events) != 0 {
		t.Fatalf("Expected no events after lone ESC, got %d", len(events))
	}
	if events := d.Feed([]byte{'['}); len(events) != 0 {
		t.Fatalf("Expected no events after ESC [, got %d", len(events))
	}
	events := d.Feed([]byte{'A'})
	if len(events) != 1 || events[0].Key != KeyUp {
		t.Fatalf("Expected KeyUp after final byte, got %+v", events)
	}
}

func TestDecoderSplitUTF8(t *testing.T) {
	raw := []byte("界") // 3 bytes
	d := NewDecoder()

	if events := d.Feed(raw[:1]); len(events) != 0 {
		t.Fatalf("Expected no events from partial rune, got %d", len(events))
	}
	if events := d.Feed(raw[1:2]); len(events) != 0 {
		t.Fatalf("Expected no events from partial rune, got %d", len(events))
	}
	events := d.Feed(raw[2:])
	if len(events) != 1 {
		t.Fatalf("Expected 1 event after final byte, got %d", len(events))
	}
	if events[0].Key != KeyRune || events[0].Rune != '界' {
		t.Errorf("Expected rune 界, got %+v", events[0])
	}
}

func TestDecoderUTF8Mixed(t *testing.T) {
	d := NewDecoder()
	events := d.Feed([]byte("a界b"))
	if len(events) != 3 {
		t.Fatalf("Expected 3 events, got %d", len(events))
	}
	want := []rune{'a', '界', 'b'}
	for i, r := range want {
		if events[i].Rune != r {
			t.Errorf("Expected rune %q at %d, got %q", r, i, events[i].Rune)
		}
	}
}

func TestDecoderInvalidUTF8Skipped(t *testing.T) {
	d := NewDecoder()
	// 0xff can never start a sequence; 0x80 is a bare continuation byte
	events := d.Feed([]byte{0xff, 0x80, 'k'})
	if len(events) != 1 {
		t.Fatalf("Expected 1 event, got %d", len(events))
	}
	if events[0].Rune != 'k' {
		t.Errorf("Expected k to survive invalid bytes, got %+v", events[0])
	}
}

func TestDecoderUnknownCSISwallowed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"Unknown terminator", "\x1b[Z"},
		{"Unknown tilde code", "\x1b[99~"},
		{"Mouse-style report", "\x1b[2;5R"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDecoder()
			events := d.Feed(append([]byte(tt.input), 'x'))
			if len(events) != 1 {
				t.Fatalf("Expected only trailing x, got %d events: %+v", len(events), events)
			}
			if events[0].Key != KeyRune || events[0].Rune != 'x' {
				t.Errorf("Expected trailing x, got %+v", events[0])
			}
		})
	}
}

func TestDecoderOversizedCSIAbandoned(t *testing.T) {
	d := NewDecoder()
	// 20 parameter bytes with no terminator: abandoned, following input intact
	junk := append([]byte("\x1b["), []byte("12345678901234567890")...)
	d.Feed(junk)
	events := d.Feed([]byte{'y'})

	found := false
	for _, ev := range events {
		if ev.Key == KeyRune && ev.Rune == 'y' {
			found = true
		}
	}
	if !found {
		t.Errorf("Expected y to decode after oversized CSI, got %+v", events)
	}
}

func TestDecoderEscEsc(t *testing.T) {
	d := NewDecoder()
	events := d.Feed([]byte{0x1b, 0x1b})
	if len(events) != 1 || events[0].Key != KeyEscape {
		t.Fatalf("Expected one Escape from ESC ESC, got %+v", events)
	}

	// The second ESC stays buffered as a fresh prefix
	events = d.Feed([]byte("[B"))
	if len(events) != 1 || events[0].Key != KeyDown {
		t.Errorf("Expected buffered ESC to introduce KeyDown, got %+v", events)
	}
}

func TestDecoderAltKeyDropped(t *testing.T) {
	d := NewDecoder()
	events := d.Feed([]byte{0x1b, 'f', 'g'})
	if len(events) != 1 {
		t.Fatalf("Expected 1 event, got %d: %+v", len(events), events)
	}
	if events[0].Rune != 'g' {
		t.Errorf("Expected Alt-f dropped and g kept, got %+v", events[0])
	}
}

func TestDecoderFlushPending(t *testing.T) {
	d := NewDecoder()

	// Nothing buffered: nothing to flush
	if events := d.FlushPending(); len(events) != 0 {
		t.Errorf("Expected no events from empty flush, got %+v", events)
	}

	// Lone ESC promoted to a standalone Escape press on timeout
	d.Feed([]byte{0x1b})
	events := d.FlushPending()
	if len(events) != 1 || events[0].Key != KeyEscape {
		t.Fatalf("Expected standalone Escape, got %+v", events)
	}

	// Partial CSI is NOT flushed, the rest may still arrive
	d.Feed([]byte{0x1b, '['})
	if events := d.FlushPending(); len(events) != 0 {
		t.Errorf("Expected partial CSI to stay buffered, got %+v", events)
	}
	events = d.Feed([]byte{'A'})
	if len(events) != 1 || events[0].Key != KeyUp {
		t.Errorf("Expected CSI completion after flush, got %+v", events)
	}
}

func TestDecoderPasteBurst(t *testing.T) {
	d := NewDecoder()
	events := d.Feed([]byte("one\rtwo\x1b[Cthree"))

	var runes []rune
	keys := map[Key]int{}
	for _, ev := range events {
		if ev.Key == KeyRune {
			runes = append(runes, ev.Rune)
		} else {
			keys[ev.Key]++
		}
	}
	if string(runes) != "onetwothree" {
		t.Errorf("Expected glyphs onetwothree, got %q", string(runes))
	}
	if keys[KeyEnter] != 1 || keys[KeyRight] != 1 {
		t.Errorf("Expected one Enter and one Right, got %v", keys)
	}
}
