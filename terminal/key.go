package terminal

// Key identifies a parsed special key. Printable input (including
// Ctrl+letter, reported as a rune with ModCtrl) uses KeyRune.
type Key uint8

const (
	KeyNone Key = iota
	KeyRune     // Printable character, see Event.Rune

	KeyEscape
	KeyEnter
	KeyTab
	KeyBacktab // Shift+Tab
	KeyBackspace
	KeyDelete
	KeyInsert

	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown

	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
)

// Modifier flags
type Modifier uint8

const (
	ModNone  Modifier = 0
	ModShift Modifier = 1 << 0
	ModAlt   Modifier = 1 << 1
	ModCtrl  Modifier = 1 << 2
)

// csiKeys maps CSI sequence bodies (bytes between ESC[ and including the
// final byte) to keys. Modifier variants follow the xterm "1;N" scheme.
var csiKeys = map[string]struct {
	key Key
	mod Modifier
}{
	"A": {KeyUp, ModNone},
	"B": {KeyDown, ModNone},
	"C": {KeyRight, ModNone},
	"D": {KeyLeft, ModNone},
	"H": {KeyHome, ModNone},
	"F": {KeyEnd, ModNone},
	"Z": {KeyBacktab, ModShift},

	"1;2A": {KeyUp, ModShift},
	"1;2B": {KeyDown, ModShift},
	"1;2C": {KeyRight, ModShift},
	"1;2D": {KeyLeft, ModShift},
	"1;3A": {KeyUp, ModAlt},
	"1;3B": {KeyDown, ModAlt},
	"1;3C": {KeyRight, ModAlt},
	"1;3D": {KeyLeft, ModAlt},
	"1;5A": {KeyUp, ModCtrl},
	"1;5B": {KeyDown, ModCtrl},
	"1;5C": {KeyRight, ModCtrl},
	"1;5D": {KeyLeft, ModCtrl},

	"1~": {KeyHome, ModNone},
	"2~": {KeyInsert, ModNone},
	"3~": {KeyDelete, ModNone},
	"4~": {KeyEnd, ModNone},
	"5~": {KeyPageUp, ModNone},
	"6~": {KeyPageDown, ModNone},
	"7~": {KeyHome, ModNone},
	"8~": {KeyEnd, ModNone},

	"11~": {KeyF1, ModNone},
	"12~": {KeyF2, ModNone},
	"13~": {KeyF3, ModNone},
	"14~": {KeyF4, ModNone},
	"15~": {KeyF5, ModNone},
	"17~": {KeyF6, ModNone},
	"18~": {KeyF7, ModNone},
	"19~": {KeyF8, ModNone},
	"20~": {KeyF9, ModNone},
	"21~": {KeyF10, ModNone},
	"23~": {KeyF11, ModNone},
	"24~": {KeyF12, ModNone},
}

// ss3Keys maps SS3 (ESC O x) final bytes, sent by application-mode keypads
var ss3Keys = map[byte]Key{
	'A': KeyUp,
	'B': KeyDown,
	'C': KeyRight,
	'D': KeyLeft,
	'H': KeyHome,
	'F': KeyEnd,
	'P': KeyF1,
	'Q': KeyF2,
	'R': KeyF3,
	'S': KeyF4,
}

// lookupCSI resolves a CSI body. The map lookup with string(seq) does not
// allocate; the compiler recognizes the pattern.
func lookupCSI(seq []byte) (Key, Modifier, bool) {
	e, ok := csiKeys[string(seq)]
	return e.key, e.mod, ok
}

func lookupSS3(final byte) (Key, bool) {
	k, ok := ss3Keys[final]
	return k, ok
}
