package terminal

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"
)

// tcellTerm implements Terminal on top of a tcell.Screen. It exists for
// environments where the raw VT backend is unsuitable (Windows consoles,
// unusual TERM databases); tcell owns all escape-sequence knowledge and this
// adapter only replays instruction streams onto the screen.
type tcellTerm struct {
	screen  tcell.Screen
	eventCh chan Event
	stopCh  chan struct{}
	doneCh  chan struct{}

	// Virtual cursor and style while applying an instruction stream
	curX, curY int
	style      tcell.Style

	mu          sync.Mutex
	initialized bool
	finalized   bool
	lastButtons tcell.ButtonMask
}

// NewTcell creates a Terminal backed by tcell.
func NewTcell() (Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("tcell screen: %w", err)
	}
	return &tcellTerm{
		screen:  screen,
		eventCh: make(chan Event, 256),
		stopCh:  make(chan struct{}),
		doneCh:  make(chan struct{}),
	}, nil
}

func (t *tcellTerm) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.initialized {
		return nil
	}
	if err := t.screen.Init(); err != nil {
		return fmt.Errorf("tcell init: %w", err)
	}
	t.screen.HideCursor()
	t.screen.Clear()

	go t.pollLoop()
	t.initialized = true
	return nil
}

func (t *tcellTerm) Fini() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized || t.finalized {
		return
	}
	close(t.stopCh)
	// Unblock PollEvent so the poll goroutine can exit
	t.screen.PostEvent(tcell.NewEventInterrupt(nil))
	<-t.doneCh

	t.screen.Fini()
	t.finalized = true
}

func (t *tcellTerm) Size() (int, int) {
	return t.screen.Size()
}

func (t *tcellTerm) ColorMode() ColorMode {
	// tcell downsamples internally when the terminal lacks truecolor
	return ColorModeTrueColor
}

func (t *tcellTerm) Events() <-chan Event {
	return t.eventCh
}

func (t *tcellTerm) PostEvent(ev Event) {
	select {
	case t.eventCh <- ev:
	default:
	}
}

func (t *tcellTerm) SetMouseMode(mode MouseMode) error {
	if mode == MouseModeNone {
		t.screen.DisableMouse()
		return nil
	}
	var flags tcell.MouseFlags
	if mode&MouseModeClick != 0 {
		flags |= tcell.MouseButtonEvents
	}
	if mode&MouseModeDrag != 0 {
		flags |= tcell.MouseDragEvents
	}
	if mode&MouseModeMotion != 0 {
		flags |= tcell.MouseMotionEvents
	}
	t.screen.EnableMouse(flags)
	return nil
}

func (t *tcellTerm) WriteFrame(width, height int, ins []Instruction) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized || t.finalized {
		return nil
	}
	w, h := t.screen.Size()
	if w != width || h != height {
		return nil // Stale frame mid-resize, drop
	}

	for i := range ins {
		in := &ins[i]
		switch in.Op {
		case OpMoveTo:
			t.curX, t.curY = in.X, in.Y
		case OpCell:
			t.style = tcell.StyleDefault.
				Foreground(tcell.NewRGBColor(int32(in.Fg.R), int32(in.Fg.G), int32(in.Fg.B))).
				Background(tcell.NewRGBColor(int32(in.Bg.R), int32(in.Bg.G), int32(in.Bg.B)))
			t.screen.SetContent(t.curX, t.curY, in.Rune, nil, t.style)
			t.curX++
		case OpRepeat:
			t.screen.SetContent(t.curX, t.curY, in.Rune, nil, t.style)
			t.curX++
		}
	}

	t.screen.Show()
	return nil
}

// pollLoop translates tcell events into terminal events
func (t *tcellTerm) pollLoop() {
	defer close(t.doneCh)

	for {
		select {
		case <-t.stopCh:
			return
		default:
		}

		ev := t.screen.PollEvent()
		if ev == nil {
			t.PostEvent(Event{Type: EventClosed})
			return
		}

		switch tev := ev.(type) {
		case *tcell.EventKey:
			t.PostEvent(mapTcellKey(tev))
		case *tcell.EventMouse:
			t.PostEvent(t.mapTcellMouse(tev))
		case *tcell.EventResize:
			w, h := tev.Size()
			t.PostEvent(Event{Type: EventResize, Width: w, Height: h})
		case *tcell.EventInterrupt:
			// Fini wake-up
		}
	}
}

func mapTcellKey(ev *tcell.EventKey) Event {
	var mod Modifier
	if ev.Modifiers()&tcell.ModShift != 0 {
		mod |= ModShift
	}
	if ev.Modifiers()&tcell.ModAlt != 0 {
		mod |= ModAlt
	}
	if ev.Modifiers()&tcell.ModCtrl != 0 {
		mod |= ModCtrl
	}

	switch key := ev.Key(); key {
	case tcell.KeyRune:
		return Event{Type: EventKey, Key: KeyRune, Rune: ev.Rune(), Modifiers: mod}
	case tcell.KeyUp:
		return Event{Type: EventKey, Key: KeyUp, Modifiers: mod}
	case tcell.KeyDown:
		return Event{Type: EventKey, Key: KeyDown, Modifiers: mod}
	case tcell.KeyLeft:
		return Event{Type: EventKey, Key: KeyLeft, Modifiers: mod}
	case tcell.KeyRight:
		return Event{Type: EventKey, Key: KeyRight, Modifiers: mod}
	case tcell.KeyEnter:
		return Event{Type: EventKey, Key: KeyEnter, Modifiers: mod}
	case tcell.KeyEscape:
		return Event{Type: EventKey, Key: KeyEscape, Modifiers: mod}
	case tcell.KeyTab:
		return Event{Type: EventKey, Key: KeyTab, Modifiers: mod}
	case tcell.KeyBacktab:
		return Event{Type: EventKey, Key: KeyBacktab, Modifiers: mod | ModShift}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return Event{Type: EventKey, Key: KeyBackspace, Modifiers: mod}
	case tcell.KeyDelete:
		return Event{Type: EventKey, Key: KeyDelete, Modifiers: mod}
	case tcell.KeyInsert:
		return Event{Type: EventKey, Key: KeyInsert, Modifiers: mod}
	case tcell.KeyHome:
		return Event{Type: EventKey, Key: KeyHome, Modifiers: mod}
	case tcell.KeyEnd:
		return Event{Type: EventKey, Key: KeyEnd, Modifiers: mod}
	case tcell.KeyPgUp:
		return Event{Type: EventKey, Key: KeyPageUp, Modifiers: mod}
	case tcell.KeyPgDn:
		return Event{Type: EventKey, Key: KeyPageDown, Modifiers: mod}
	default:
		if key >= tcell.KeyF1 && key <= tcell.KeyF12 {
			return Event{Type: EventKey, Key: KeyF1 + Key(key-tcell.KeyF1), Modifiers: mod}
		}
		// Ctrl+letter arrives as a dedicated tcell key code
		if key >= tcell.KeyCtrlA && key <= tcell.KeyCtrlZ {
			return Event{
				Type:      EventKey,
				Key:       KeyRune,
				Rune:      rune('a' + key - tcell.KeyCtrlA),
				Modifiers: mod | ModCtrl,
			}
		}
		return Event{Type: EventKey, Key: KeyNone, Modifiers: mod}
	}
}

func (t *tcellTerm) mapTcellMouse(ev *tcell.EventMouse) Event {
	x, y := ev.Position()
	out := Event{Type: EventMouse, MouseX: x, MouseY: y}

	buttons := ev.Buttons()
	pressed := buttons &^ t.lastButtons
	released := t.lastButtons &^ buttons
	t.lastButtons = buttons

	switch {
	case buttons&tcell.WheelUp != 0:
		out.MouseBtn, out.MouseAction = MouseBtnWheelUp, MouseActionPress
	case buttons&tcell.WheelDown != 0:
		out.MouseBtn, out.MouseAction = MouseBtnWheelDown, MouseActionPress
	case pressed&tcell.Button1 != 0:
		out.MouseBtn, out.MouseAction = MouseBtnLeft, MouseActionPress
	case pressed&tcell.Button2 != 0:
		out.MouseBtn, out.MouseAction = MouseBtnRight, MouseActionPress
	case pressed&tcell.Button3 != 0:
		out.MouseBtn, out.MouseAction = MouseBtnMiddle, MouseActionPress
	case released&tcell.Button1 != 0:
		out.MouseBtn, out.MouseAction = MouseBtnLeft, MouseActionRelease
	case released&tcell.Button2 != 0:
		out.MouseBtn, out.MouseAction = MouseBtnRight, MouseActionRelease
	case released&tcell.Button3 != 0:
		out.MouseBtn, out.MouseAction = MouseBtnMiddle, MouseActionRelease
	case buttons&tcell.Button1 != 0:
		out.MouseBtn, out.MouseAction = MouseBtnLeft, MouseActionDrag
	default:
		out.MouseBtn, out.MouseAction = MouseBtnNone, MouseActionMove
	}
	return out
}
