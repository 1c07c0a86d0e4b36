package component

import (
	"testing"

	"github.com/skius/teng/engine"
	"github.com/skius/teng/terminal"
)

func keyEv(r rune, mod terminal.Modifier) terminal.Event {
	return terminal.Event{Type: terminal.EventKey, Key: terminal.KeyRune, Rune: r, Modifiers: mod}
}

func mouseEv(x, y int, action terminal.MouseAction, btn terminal.MouseButton) terminal.Event {
	return terminal.Event{
		Type: terminal.EventMouse, MouseX: x, MouseY: y,
		MouseAction: action, MouseBtn: btn,
	}
}

func TestQuitter(t *testing.T) {
	s := &engine.SharedState[int]{}
	q := NewQuitter[int]('q')

	q.OnEvent(keyEv('x', 0), s)
	if s.QuitRequested() {
		t.Error("quit on unrelated key")
	}
	q.OnEvent(keyEv('q', 0), s)
	if !s.QuitRequested() {
		t.Error("no quit on the quit rune")
	}

	s2 := &engine.SharedState[int]{}
	q.OnEvent(keyEv('c', terminal.ModCtrl), s2)
	if !s2.QuitRequested() {
		t.Error("no quit on Ctrl+C")
	}

	// Plain 'c' must not quit
	s3 := &engine.SharedState[int]{}
	q.OnEvent(keyEv('c', 0), s3)
	if s3.QuitRequested() {
		t.Error("quit on plain 'c'")
	}
}

func TestKeyPressRecorder(t *testing.T) {
	s := &engine.SharedState[int]{}
	k := NewKeyPressRecorder[int]()

	k.OnEvent(keyEv('a', 0), s)
	k.OnEvent(keyEv('b', 0), s)
	k.OnEvent(mouseEv(1, 1, terminal.MouseActionMove, terminal.MouseBtnNone), s)
	k.Update(engine.UpdateInfo{}, s)

	if !s.Keys.ContainsRune('a') || !s.Keys.ContainsRune('b') {
		t.Errorf("keys missing: %v", s.Keys.Events())
	}
	if len(s.Keys.Events()) != 2 {
		t.Errorf("non-key event recorded: %v", s.Keys.Events())
	}

	// Next frame with no events clears the set
	k.Update(engine.UpdateInfo{}, s)
	if s.Keys.ContainsRune('a') {
		t.Error("stale key survived a frame")
	}
}

func TestKeyDebouncer(t *testing.T) {
	s := &engine.SharedState[int]{}
	rec := NewKeyPressRecorder[int]()
	deb := NewKeyDebouncer[int](0.1)

	step := func(dt float64, runes ...rune) []rune {
		for _, r := range runes {
			rec.OnEvent(keyEv(r, 0), s)
		}
		info := engine.UpdateInfo{Dt: dt}
		rec.Update(info, s)
		deb.Update(info, s)
		return deb.Pressed
	}

	if got := step(0.016, 'a'); len(got) != 1 || got[0] != 'a' {
		t.Fatalf("first press = %v", got)
	}
	if got := step(0.016, 'a'); len(got) != 0 {
		t.Errorf("repeat inside window passed: %v", got)
	}
	if got := step(0.2, 'a'); len(got) != 1 {
		t.Errorf("press after window suppressed: %v", got)
	}
}

func TestMouseTrackerState(t *testing.T) {
	s := &engine.SharedState[int]{}
	m := NewMouseTracker[int](false)

	m.OnEvent(mouseEv(3, 2, terminal.MouseActionPress, terminal.MouseBtnLeft), s)
	m.Update(engine.UpdateInfo{}, s)
	if !s.Mouse.Known || s.Mouse.X != 3 || s.Mouse.Y != 2 || !s.Mouse.LeftDown {
		t.Errorf("mouse state = %+v", s.Mouse)
	}

	m.OnEvent(mouseEv(3, 2, terminal.MouseActionRelease, terminal.MouseBtnLeft), s)
	m.Update(engine.UpdateInfo{}, s)
	if s.Mouse.LeftDown {
		t.Error("button still down after release")
	}
}

func TestMouseTrackerInterpolation(t *testing.T) {
	s := &engine.SharedState[int]{}
	m := NewMouseTracker[int](true)

	m.OnEvent(mouseEv(0, 0, terminal.MouseActionMove, terminal.MouseBtnNone), s)
	m.Update(engine.UpdateInfo{}, s)

	m.OnEvent(mouseEv(4, 0, terminal.MouseActionMove, terminal.MouseBtnNone), s)
	m.Update(engine.UpdateInfo{}, s)

	// Cells 1..3 synthesized, 4 real
	if len(s.MouseEvents) != 4 {
		t.Fatalf("got %d events, want 4: %+v", len(s.MouseEvents), s.MouseEvents)
	}
	for i, ev := range s.MouseEvents {
		if ev.MouseX != i+1 || ev.MouseY != 0 {
			t.Errorf("event %d at (%d,%d)", i, ev.MouseX, ev.MouseY)
		}
	}
}

func TestMouseTrackerNoGapNoSynthesis(t *testing.T) {
	s := &engine.SharedState[int]{}
	m := NewMouseTracker[int](true)

	m.OnEvent(mouseEv(5, 5, terminal.MouseActionMove, terminal.MouseBtnNone), s)
	m.Update(engine.UpdateInfo{}, s)
	m.OnEvent(mouseEv(6, 5, terminal.MouseActionMove, terminal.MouseBtnNone), s)
	m.Update(engine.UpdateInfo{}, s)

	if len(s.MouseEvents) != 1 {
		t.Errorf("adjacent move synthesized events: %+v", s.MouseEvents)
	}
}

func TestFPSLocker(t *testing.T) {
	s := &engine.SharedState[int]{TargetFPS: 60}
	f := NewFPSLocker[int](30)
	f.Setup(s)
	if s.TargetFPS != 30 {
		t.Errorf("TargetFPS = %v after Setup", s.TargetFPS)
	}
	s.TargetFPS = 144
	f.Update(engine.UpdateInfo{}, s)
	if s.TargetFPS != 30 {
		t.Errorf("TargetFPS = %v after Update", s.TargetFPS)
	}
}
