package editor

// Kind discriminates editing events.
type Kind uint8

const (
	KindNone Kind = iota

	// KindType places Glyph at the cursor and advances it
	KindType

	// KindErase blanks the cell under the cursor in place
	KindErase

	// KindMove shifts the cursor by (DRow, DCol), clamped to the grid
	KindMove

	// KindReturn moves to the next row at the insert-entrance column (Col)
	KindReturn

	// KindClear blanks the whole surface
	KindClear

	// KindResize resizes the grid to Rows×Cols
	KindResize

	// KindEnterInsert / KindExitInsert switch the modal state; they touch
	// no surface state but change the visible cursor shape
	KindEnterInsert
	KindExitInsert

	// KindRedraw forces a full repaint on the next render
	KindRedraw

	// KindQuit unwinds the control loop
	KindQuit
)

// edgeJump is a cursor delta larger than any plausible viewport; clamping
// turns it into "jump to the edge".
const edgeJump = 1 << 20

// Event is one decoded editing operation, produced by translating terminal
// input through the current mode.
type Event struct {
	Kind  Kind
	Glyph rune
	DRow  int
	DCol  int
	Col   int // KindReturn: target column
	Rows  int // KindResize
	Cols  int // KindResize
}
