package terminal

// Key identifies a parsed input key.
type Key uint8

const (
	KeyNone Key = iota
	KeyRune     // printable glyph, check Event.Rune

	KeyEscape
	KeyEnter
	KeyTab
	KeyBackspace
	KeyDelete

	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown

	KeyCtrlC
	KeyCtrlL
)

// csiKeys maps the parameter bytes of known CSI sequences (after "ESC [")
// to keys. Sequences absent from the table are consumed and dropped:
// stray escape noise must never crash or desynchronize the session.
var csiKeys = map[string]Key{
	"A": KeyUp,
	"B": KeyDown,
	"C": KeyRight,
	"D": KeyLeft,
	"H": KeyHome,
	"F": KeyEnd,

	"1~": KeyHome,
	"4~": KeyEnd,
	"7~": KeyHome,
	"8~": KeyEnd,
	"3~": KeyDelete,
	"5~": KeyPageUp,
	"6~": KeyPageDown,
}

// ss3Keys maps SS3 sequences (after "ESC O"), sent by terminals in
// application cursor mode.
var ss3Keys = map[string]Key{
	"A": KeyUp,
	"B": KeyDown,
	"C": KeyRight,
	"D": KeyLeft,
	"H": KeyHome,
	"F": KeyEnd,
	"M": KeyEnter, // keypad Enter
}

// lookupCSI resolves a CSI parameter slice. The string([]byte) conversion
// inline in the map access does not allocate.
func lookupCSI(seq []byte) (Key, bool) {
	k, ok := csiKeys[string(seq)]
	return k, ok
}

// lookupSS3 resolves an SS3 parameter slice.
func lookupSS3(seq []byte) (Key, bool) {
	k, ok := ss3Keys[string(seq)]
	return k, ok
}
