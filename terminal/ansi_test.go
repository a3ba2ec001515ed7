package terminal

import (
	"bufio"
	"bytes"
	"testing"
)

func TestWriteInt(t *testing.T) {
	tests := []struct {
		name string
		n    int
		want string
	}{
		{"Zero", 0, "0"},
		{"Single digit", 7, "7"},
		{"Two digits", 42, "42"},
		{"Three digits", 255, "255"},
		{"Four digits", 1024, "1024"},
		{"Negative clamps to zero", -5, "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			w := bufio.NewWriter(&buf)
			WriteInt(w, tt.n)
			w.Flush()
			if buf.String() != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, buf.String())
			}
		})
	}
}

func TestWriteCursorPos(t *testing.T) {
	tests := []struct {
		name     string
		row, col int
		want     string
	}{
		{"Origin", 0, 0, "\x1b[1;1H"},
		{"Offset", 4, 9, "\x1b[5;10H"},
		{"Large", 120, 300, "\x1b[121;301H"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			w := bufio.NewWriter(&buf)
			WriteCursorPos(w, tt.row, tt.col)
			w.Flush()
			if buf.String() != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, buf.String())
			}
		})
	}
}

func TestWriteCursorForward(t *testing.T) {
	tests := []struct {
		name string
		n    int
		want string
	}{
		{"Zero writes nothing", 0, ""},
		{"Negative writes nothing", -3, ""},
		{"One", 1, "\x1b[C"},
		{"Many", 12, "\x1b[12C"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			w := bufio.NewWriter(&buf)
			WriteCursorForward(w, tt.n)
			w.Flush()
			if buf.String() != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, buf.String())
			}
		})
	}
}
