package terminal

// Op is the kind of a frame instruction
type Op uint8

const (
	// OpMoveTo positions the cursor at (X, Y), 0-indexed
	OpMoveTo Op = iota
	// OpCell writes Rune with the Fg/Bg style, advancing the cursor
	OpCell
	// OpRepeat writes Rune reusing the style of the previous OpCell,
	// advancing the cursor
	OpRepeat
)

// Instruction is one element of the per-frame write stream produced by the
// differ and consumed by a frame sink. The stream is ordered: cursor position
// and active style are stateful, an instruction only makes sense after its
// predecessors have been applied.
type Instruction struct {
	Op     Op
	X, Y   int // OpMoveTo
	Rune   rune
	Fg, Bg RGB // OpCell, resolved (no transparency at this level)
}

// FrameSink consumes one instruction stream per frame. width and height are
// the dimensions the stream was produced for; a sink may drop the frame if
// they no longer match the output (resize race).
//
// A returned error is fatal for the frame loop: terminal output is not
// idempotent once partially written, so frames are never retried.
type FrameSink interface {
	WriteFrame(width, height int, ins []Instruction) error
}
