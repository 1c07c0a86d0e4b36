package component

import (
	"github.com/skius/teng/engine"
	"github.com/skius/teng/terminal"
)

// Quitter requests shutdown on Ctrl+C, and optionally on an extra rune
// (commonly 'q').
type Quitter[S any] struct {
	engine.NopComponent[S]

	// QuitRune also triggers shutdown when non-zero.
	QuitRune rune
}

// NewQuitter creates a Quitter that also quits on r. Pass 0 for Ctrl+C only.
func NewQuitter[S any](r rune) *Quitter[S] {
	return &Quitter[S]{QuitRune: r}
}

func (q *Quitter[S]) OnEvent(ev terminal.Event, state *engine.SharedState[S]) {
	if ev.Type != terminal.EventKey || ev.Key != terminal.KeyRune {
		return
	}
	if ev.Rune == 'c' && ev.Modifiers&terminal.ModCtrl != 0 {
		state.RequestQuit()
		return
	}
	if q.QuitRune != 0 && ev.Rune == q.QuitRune && ev.Modifiers == 0 {
		state.RequestQuit()
	}
}
