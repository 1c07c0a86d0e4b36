package engine

import "github.com/skius/teng/terminal"

// PressedKeys is the set of key events observed in the current frame.
// Terminals report presses only, so "pressed" means "arrived this frame".
type PressedKeys struct {
	events []terminal.Event
}

// SetEvents replaces the frame's key events. Called by whatever component
// owns key recording, once per frame.
func (p *PressedKeys) SetEvents(evs []terminal.Event) {
	p.events = evs
}

// Events returns the frame's key events in arrival order.
func (p *PressedKeys) Events() []terminal.Event {
	return p.events
}

// ContainsRune reports whether the plain rune r was pressed this frame.
func (p *PressedKeys) ContainsRune(r rune) bool {
	for _, ev := range p.events {
		if ev.Key == terminal.KeyRune && ev.Rune == r && ev.Modifiers&terminal.ModCtrl == 0 {
			return true
		}
	}
	return false
}

// ContainsKey reports whether the named key was pressed this frame.
func (p *PressedKeys) ContainsKey(k terminal.Key) bool {
	for _, ev := range p.events {
		if ev.Key == k {
			return true
		}
	}
	return false
}

// ContainsCtrl reports whether Ctrl plus the rune r was pressed this frame.
func (p *PressedKeys) ContainsCtrl(r rune) bool {
	for _, ev := range p.events {
		if ev.Key == terminal.KeyRune && ev.Rune == r && ev.Modifiers&terminal.ModCtrl != 0 {
			return true
		}
	}
	return false
}

// MouseInfo is the latest known pointer state.
type MouseInfo struct {
	// Known is false until the first mouse event arrives.
	Known bool

	X int
	Y int

	LeftDown   bool
	RightDown  bool
	MiddleDown bool
}

// Apply folds one mouse event into the state.
func (m *MouseInfo) Apply(ev terminal.Event) {
	if ev.Type != terminal.EventMouse {
		return
	}
	m.Known = true
	m.X, m.Y = ev.MouseX, ev.MouseY

	down := ev.MouseAction == terminal.MouseActionPress || ev.MouseAction == terminal.MouseActionDrag
	up := ev.MouseAction == terminal.MouseActionRelease
	switch ev.MouseBtn {
	case terminal.MouseBtnLeft:
		if down {
			m.LeftDown = true
		} else if up {
			m.LeftDown = false
		}
	case terminal.MouseBtnRight:
		if down {
			m.RightDown = true
		} else if up {
			m.RightDown = false
		}
	case terminal.MouseBtnMiddle:
		if down {
			m.MiddleDown = true
		} else if up {
			m.MiddleDown = false
		}
	}
}
