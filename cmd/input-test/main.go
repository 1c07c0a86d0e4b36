// Input-test echoes decoded events on screen. Useful for checking what a
// given terminal emulator actually sends. Ctrl+C quits.
package main

import (
	"fmt"
	"os"

	"github.com/skius/teng/component"
	"github.com/skius/teng/engine"
	"github.com/skius/teng/render"
	"github.com/skius/teng/terminal"
)

const maxLog = 16

func main() {
	term := terminal.New()

	g := engine.NewGame(term, struct{}{})
	g.SetMouseMode(terminal.MouseModeClick | terminal.MouseModeDrag | terminal.MouseModeMotion)

	g.AddComponent(component.NewKeyPressRecorder[struct{}]())
	g.AddComponent(component.NewMouseTracker[struct{}](false))
	g.AddComponent(component.NewQuitter[struct{}](0))
	g.AddComponent(&echo{})

	if err := g.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "input-test: %v\n", err)
		os.Exit(1)
	}
}

// echo keeps a scrolling log of events and renders it.
type echo struct {
	engine.NopComponent[struct{}]
	log []string
}

func (e *echo) OnEvent(ev terminal.Event, s *engine.SharedState[struct{}]) {
	var line string
	switch ev.Type {
	case terminal.EventKey:
		if ev.Key == terminal.KeyRune {
			line = fmt.Sprintf("key rune=%q mod=%03b", ev.Rune, ev.Modifiers)
		} else {
			line = fmt.Sprintf("key code=%d mod=%03b", ev.Key, ev.Modifiers)
		}
	case terminal.EventMouse:
		line = fmt.Sprintf("mouse (%d,%d) btn=%d action=%d", ev.MouseX, ev.MouseY, ev.MouseBtn, ev.MouseAction)
	case terminal.EventResize:
		line = fmt.Sprintf("resize %dx%d", ev.Width, ev.Height)
	default:
		line = fmt.Sprintf("event type=%d", ev.Type)
	}

	if len(e.log) >= maxLog {
		copy(e.log, e.log[1:])
		e.log = e.log[:maxLog-1]
	}
	e.log = append(e.log, line)
}

func (e *echo) Render(r render.Renderer, s *engine.SharedState[struct{}], depthBase int) {
	drawText(r, 1, 0, "input test - Ctrl+C quits", depthBase, 200, 200, 200)
	for i, line := range e.log {
		drawText(r, 1, 2+i, line, depthBase, 180, 180, 180)
	}

	// Crosshair at the pointer
	if s.Mouse.Known {
		p := render.NewPixel('+').WithFg(255, 255, 0)
		r.RenderPixel(s.Mouse.X, s.Mouse.Y, p, depthBase+1)
	}
}

func drawText(r render.Renderer, x, y int, s string, depth int, cr, cg, cb uint8) {
	for i, ch := range s {
		r.RenderPixel(x+i, y, render.NewPixel(ch).WithFg(cr, cg, cb), depth)
	}
}
