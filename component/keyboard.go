package component

import (
	"github.com/skius/teng/engine"
	"github.com/skius/teng/terminal"
)

// KeyPressRecorder collects the frame's key events and publishes them as
// SharedState.Keys. It runs early so components registered after it see the
// finished set in their Update.
type KeyPressRecorder[S any] struct {
	engine.NopComponent[S]

	pending []terminal.Event
	current []terminal.Event
}

func NewKeyPressRecorder[S any]() *KeyPressRecorder[S] {
	return &KeyPressRecorder[S]{}
}

func (k *KeyPressRecorder[S]) OnEvent(ev terminal.Event, state *engine.SharedState[S]) {
	if ev.Type == terminal.EventKey {
		k.pending = append(k.pending, ev)
	}
}

func (k *KeyPressRecorder[S]) Update(info engine.UpdateInfo, state *engine.SharedState[S]) {
	// Swap instead of copy; pending reuses last frame's slice
	k.current, k.pending = k.pending, k.current[:0]
	state.Keys.SetEvents(k.current)
}

// KeyDebouncer suppresses repeats of the same rune arriving within Window.
// Terminals autorepeat held keys; some applications want edges only.
type KeyDebouncer[S any] struct {
	engine.NopComponent[S]

	// Window is the repeat suppression interval in seconds.
	Window float64

	last     map[rune]float64
	now      float64
	Pressed  []rune
	scratch  []rune
}

// NewKeyDebouncer creates a debouncer with the given window in seconds.
func NewKeyDebouncer[S any](window float64) *KeyDebouncer[S] {
	return &KeyDebouncer[S]{
		Window: window,
		last:   make(map[rune]float64),
	}
}

func (k *KeyDebouncer[S]) Update(info engine.UpdateInfo, state *engine.SharedState[S]) {
	k.now += info.Dt
	k.scratch = k.scratch[:0]
	for _, ev := range state.Keys.Events() {
		if ev.Key != terminal.KeyRune {
			continue
		}
		if t, ok := k.last[ev.Rune]; ok && k.now-t < k.Window {
			continue
		}
		k.last[ev.Rune] = k.now
		k.scratch = append(k.scratch, ev.Rune)
	}
	k.Pressed, k.scratch = k.scratch, k.Pressed
}
