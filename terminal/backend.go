package terminal

import "io"

// Backend abstracts platform-specific terminal access so the decoder,
// renderer, and control loop can be exercised against fakes in tests.
type Backend interface {
	// Init switches the terminal into raw mode.
	Init() error

	// Fini restores the original terminal mode. Safe to call repeatedly.
	Fini()

	// Size returns the current viewport dimensions.
	Size() (rows, cols int)

	// Writer is the raw byte sink for escape sequences and glyphs.
	io.Writer

	// Read blocks until input arrives, the stop channel closes, or an
	// error occurs. A nil slice with nil error signals a poll timeout.
	Read(stopCh <-chan struct{}) ([]byte, error)

	// SetResizeHandler registers a callback for viewport dimension changes.
	SetResizeHandler(handler func(rows, cols int))
}
