package terminal

import (
	"bufio"
	"io"
)

// frameWriter translates instruction streams into escape-sequence bytes.
// It owns the belief about the physical cursor position and the active SGR
// style across frames, so redundant escapes are never emitted.
type frameWriter struct {
	w         *bufio.Writer
	colorMode ColorMode

	cursorX     int
	cursorY     int
	cursorValid bool

	lastFg     RGB
	lastBg     RGB
	styleValid bool
}

func newFrameWriter(w io.Writer, colorMode ColorMode) *frameWriter {
	return &frameWriter{
		w:         bufio.NewWriterSize(w, 131072), // One full frame fits without intermediate flushes
		colorMode: colorMode,
	}
}

// writeFrame emits the instruction stream and flushes once. bufio write
// errors are sticky and surface from the final Flush.
func (fw *frameWriter) writeFrame(ins []Instruction) error {
	w := fw.w

	for i := range ins {
		in := &ins[i]
		switch in.Op {
		case OpMoveTo:
			fw.moveTo(in.X, in.Y)
		case OpCell:
			fw.setStyle(in.Fg, in.Bg)
			fw.putRune(in.Rune)
		case OpRepeat:
			fw.putRune(in.Rune)
		}
	}

	// Leave the terminal in a neutral style between frames; anything else
	// written to the tty (crash output) would inherit the last cell's colors
	w.Write(csiSGR0)
	fw.styleValid = false

	return w.Flush()
}

func (fw *frameWriter) moveTo(x, y int) {
	if fw.cursorValid && x == fw.cursorX && y == fw.cursorY {
		return
	}
	// Short forward hops within a row are cheaper than absolute positioning
	if fw.cursorValid && y == fw.cursorY && x > fw.cursorX {
		writeCursorForward(fw.w, x-fw.cursorX)
	} else {
		writeCursorPos(fw.w, x, y)
	}
	fw.cursorX = x
	fw.cursorY = y
	fw.cursorValid = true
}

func (fw *frameWriter) putRune(r rune) {
	if r == 0 {
		r = ' '
	}
	if r < 0x80 {
		fw.w.WriteByte(byte(r))
	} else {
		fw.w.WriteRune(r)
	}
	fw.cursorX++
}

// setStyle emits the minimal SGR sequence for the style delta
func (fw *frameWriter) setStyle(fg, bg RGB) {
	fgChanged := !fw.styleValid || fg != fw.lastFg
	bgChanged := !fw.styleValid || bg != fw.lastBg
	if !fgChanged && !bgChanged {
		return
	}

	w := fw.w
	switch {
	case fgChanged && bgChanged:
		w.Write(csi)
		if fw.colorMode == ColorModeTrueColor {
			w.Write(fgRGBPart)
			fw.writeRGB(fg)
			w.Write(bgRGBPart)
			fw.writeRGB(bg)
		} else {
			w.Write(fg256Part)
			writeInt(w, int(RGBTo256(fg)))
			w.Write(bg256Part)
			writeInt(w, int(RGBTo256(bg)))
		}
		w.WriteByte('m')
	case fgChanged:
		if fw.colorMode == ColorModeTrueColor {
			w.Write(csiFgRGB)
			fw.writeRGB(fg)
		} else {
			w.Write(csiFg256)
			writeInt(w, int(RGBTo256(fg)))
		}
		w.WriteByte('m')
	default:
		if fw.colorMode == ColorModeTrueColor {
			w.Write(csiBgRGB)
			fw.writeRGB(bg)
		} else {
			w.Write(csiBg256)
			writeInt(w, int(RGBTo256(bg)))
		}
		w.WriteByte('m')
	}

	fw.lastFg = fg
	fw.lastBg = bg
	fw.styleValid = true
}

func (fw *frameWriter) writeRGB(c RGB) {
	writeInt(fw.w, int(c.R))
	fw.w.WriteByte(';')
	writeInt(fw.w, int(c.G))
	fw.w.WriteByte(';')
	writeInt(fw.w, int(c.B))
}

// invalidate drops the cursor and style beliefs, forcing explicit
// positioning on the next frame. Called after anything else touched the tty.
func (fw *frameWriter) invalidate() {
	fw.cursorValid = false
	fw.styleValid = false
}

// clear wipes the screen with the default background and flushes
func (fw *frameWriter) clear() error {
	fw.w.Write(csiSGR0)
	fw.w.Write(csiClear)
	fw.invalidate()
	return fw.w.Flush()
}
