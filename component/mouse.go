package component

import (
	"github.com/skius/teng/engine"
	"github.com/skius/teng/terminal"
)

// MouseTracker folds the frame's mouse events into SharedState.Mouse and
// publishes them as SharedState.MouseEvents. Like the key recorder it runs
// early in the component order.
type MouseTracker[S any] struct {
	engine.NopComponent[S]

	// Interpolate inserts synthetic motion events along the line between
	// successive positions. Terminals report sparse positions during fast
	// movement; painting applications want every crossed cell.
	Interpolate bool

	pending []terminal.Event
	events  []terminal.Event
	lastX   int
	lastY   int
	hasLast bool
}

func NewMouseTracker[S any](interpolate bool) *MouseTracker[S] {
	return &MouseTracker[S]{Interpolate: interpolate}
}

func (m *MouseTracker[S]) OnEvent(ev terminal.Event, state *engine.SharedState[S]) {
	if ev.Type == terminal.EventMouse {
		m.pending = append(m.pending, ev)
	}
}

func (m *MouseTracker[S]) Update(info engine.UpdateInfo, state *engine.SharedState[S]) {
	m.events = m.events[:0]
	for _, ev := range m.pending {
		if m.Interpolate && m.hasLast {
			m.appendLine(m.lastX, m.lastY, ev)
		}
		m.events = append(m.events, ev)
		m.lastX, m.lastY = ev.MouseX, ev.MouseY
		m.hasLast = true
	}
	m.pending = m.pending[:0]

	for _, ev := range m.events {
		state.Mouse.Apply(ev)
	}
	state.MouseEvents = m.events
}

// appendLine emits synthetic events for the cells strictly between the last
// position and target, carrying target's button but as plain motion.
func (m *MouseTracker[S]) appendLine(x0, y0 int, target terminal.Event) {
	x1, y1 := target.MouseX, target.MouseY
	dx, dy := abs(x1-x0), -abs(y1-y0)
	sx, sy := sign(x1-x0), sign(y1-y0)
	err := dx + dy

	x, y := x0, y0
	for {
		e2 := 2 * err
		if e2 >= dy {
			if x == x1 {
				break
			}
			err += dy
			x += sx
		}
		if e2 <= dx {
			if y == y1 {
				break
			}
			err += dx
			y += sy
		}
		if x == x1 && y == y1 {
			break
		}
		syn := target
		syn.MouseX, syn.MouseY = x, y
		syn.MouseAction = terminal.MouseActionMove
		if target.MouseAction == terminal.MouseActionDrag {
			syn.MouseAction = terminal.MouseActionDrag
		}
		m.events = append(m.events, syn)
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	}
	return 0
}
