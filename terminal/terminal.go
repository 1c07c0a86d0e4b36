package terminal

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// Terminal provides terminal lifecycle, input, and frame output. It is the
// boundary the engine talks to; everything behind it is platform detail.
type Terminal interface {
	// Init enters raw mode and the alternate screen and hides the cursor.
	// Must be called before any other method.
	Init() error

	// Fini restores the terminal. Safe to call multiple times.
	Fini()

	// Size returns the current terminal dimensions in cells.
	Size() (width, height int)

	// ColorMode returns the detected color capability.
	ColorMode() ColorMode

	// Events returns the input event stream. Resize events are delivered
	// on the same channel. The channel is never closed while initialized;
	// events are dropped rather than blocking the producer.
	Events() <-chan Event

	// PostEvent injects a synthetic event into the stream.
	PostEvent(ev Event)

	// WriteFrame implements FrameSink.
	WriteFrame(width, height int, ins []Instruction) error

	// SetMouseMode enables or disables mouse reporting. Modes combine:
	// MouseModeClick | MouseModeDrag.
	SetMouseMode(mode MouseMode) error
}

// termImpl implements Terminal over a raw-I/O Backend
type termImpl struct {
	backend Backend
	fw      *frameWriter
	input   *inputReader
	eventCh chan Event

	mu          sync.Mutex
	initialized bool
	finalized   bool
	mouseMode   MouseMode
	width       int
	height      int
}

// New creates a Terminal for the current platform. The color mode argument
// is optional; detection from the environment is the default.
func New(colorMode ...ColorMode) Terminal {
	mode := DetectColorMode()
	if len(colorMode) > 0 {
		mode = colorMode[0]
	}

	b := newBackend()
	t := &termImpl{
		backend: b,
		eventCh: make(chan Event, 256),
	}
	t.fw = newFrameWriter(backendWriter{b}, mode)
	t.input = newInputReader(b, t.eventCh)
	return t
}

// backendWriter adapts Backend.Write to io.Writer
type backendWriter struct {
	b Backend
}

func (w backendWriter) Write(p []byte) (int, error) {
	if err := w.b.Write(p); err != nil {
		return 0, err
	}
	return len(p), nil
}

func (t *termImpl) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.initialized {
		return nil
	}

	if err := t.backend.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}

	t.width, t.height = t.backend.Size()

	t.backend.SetResizeHandler(func(w, h int) {
		t.mu.Lock()
		t.width, t.height = w, h
		// The terminal may have scrolled or reflowed; positioning beliefs
		// are stale
		t.fw.invalidate()
		t.mu.Unlock()

		ev := Event{Type: EventResize, Width: w, Height: h}
		select {
		case t.eventCh <- ev:
		default:
		}
	})

	t.backend.Write(csiAltScreenEnter)
	t.backend.Write(csiCursorHide)
	t.backend.Write(csiAutoWrapOff)
	t.fw.clear()

	t.input.start()
	t.initialized = true
	return nil
}

func (t *termImpl) Fini() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized || t.finalized {
		return
	}

	if t.mouseMode != MouseModeNone {
		t.backend.Write(csiMouseMotionOff)
		t.backend.Write(csiMouseDragOff)
		t.backend.Write(csiMouseClickOff)
		t.backend.Write(csiMouseSGROff)
	}

	t.input.stop()

	t.backend.Write(csiCursorShow)
	t.backend.Write(csiAltScreenExit)
	// Re-enable wrap after leaving the alt screen so the main buffer keeps it
	t.backend.Write(csiAutoWrapOn)
	t.backend.Write(csiSGR0)

	t.backend.Fini()
	t.finalized = true
}

func (t *termImpl) Size() (int, int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.initialized {
		return t.backend.Size()
	}
	return t.width, t.height
}

func (t *termImpl) ColorMode() ColorMode {
	return t.fw.colorMode
}

func (t *termImpl) Events() <-chan Event {
	return t.eventCh
}

func (t *termImpl) PostEvent(ev Event) {
	select {
	case t.eventCh <- ev:
	default:
	}
}

func (t *termImpl) WriteFrame(width, height int, ins []Instruction) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized || t.finalized {
		return nil
	}

	// Drop frames produced for a stale size; writing them would corrupt the
	// display mid-resize. The renderer repaints fully once it catches up.
	if width != t.width || height != t.height {
		return nil
	}

	return t.fw.writeFrame(ins)
}

func (t *termImpl) SetMouseMode(mode MouseMode) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized || t.finalized {
		return nil
	}

	old := t.mouseMode
	t.mouseMode = mode

	// Disable first, highest tier down
	if old&MouseModeMotion != 0 && mode&MouseModeMotion == 0 {
		t.backend.Write(csiMouseMotionOff)
	}
	if old&MouseModeDrag != 0 && mode&MouseModeDrag == 0 {
		t.backend.Write(csiMouseDragOff)
	}
	if old&MouseModeClick != 0 && mode&MouseModeClick == 0 {
		t.backend.Write(csiMouseClickOff)
	}
	if mode == MouseModeNone && old != MouseModeNone {
		return t.backend.Write(csiMouseSGROff)
	}

	if mode != MouseModeNone && old == MouseModeNone {
		if err := t.backend.Write(csiMouseSGROn); err != nil {
			return err
		}
	}
	if mode&MouseModeClick != 0 && old&MouseModeClick == 0 {
		t.backend.Write(csiMouseClickOn)
	}
	if mode&MouseModeDrag != 0 && old&MouseModeDrag == 0 {
		t.backend.Write(csiMouseDragOn)
	}
	if mode&MouseModeMotion != 0 && old&MouseModeMotion == 0 {
		return t.backend.Write(csiMouseMotionOn)
	}
	return nil
}

// EmergencyReset writes the sequences that restore a usable terminal without
// going through a Terminal instance. For panic paths where the normal Fini
// chain cannot run.
func EmergencyReset(w io.Writer) {
	w.Write(csiMouseMotionOff)
	w.Write(csiMouseDragOff)
	w.Write(csiMouseClickOff)
	w.Write(csiMouseSGROff)
	w.Write(csiCursorShow)
	w.Write(csiAltScreenExit)
	w.Write(csiSGR0)
	w.Write(csiAutoWrapOn)
	w.Write(csiRIS)

	if f, ok := w.(*os.File); ok {
		f.Sync()
	}

	// Escape sequences alone do not restore termios; best effort via the
	// platform backend
	resetTerminalMode()
}
