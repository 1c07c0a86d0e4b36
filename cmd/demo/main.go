// Demo: a bouncing ball plus mouse painting, driven by the stock component
// set. 'q' or Ctrl+C quits, F12 toggles the debug overlay, left mouse paints.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/skius/teng/component"
	"github.com/skius/teng/engine"
	"github.com/skius/teng/render"
	"github.com/skius/teng/terminal"
)

var (
	configPath = pflag.String("config", "engine.yaml", "engine config file")
	fps        = pflag.Float64("fps", 0, "override target frame rate")
	backend    = pflag.String("backend", "", "override backend: ansi|tcell")
)

func main() {
	pflag.Parse()

	cfg, err := engine.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "demo: %v\n", err)
		os.Exit(1)
	}
	if *fps > 0 {
		cfg.TargetFPS = *fps
	}
	if *backend != "" {
		cfg.Backend = *backend
	}
	cfg.Mouse = "motion"
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "demo: %v\n", err)
		os.Exit(1)
	}

	term, err := cfg.NewTerminal()
	if err != nil {
		fmt.Fprintf(os.Stderr, "demo: %v\n", err)
		os.Exit(1)
	}

	g := engine.NewGame(term, struct{}{})
	g.SetMouseMode(cfg.MouseMode())
	g.SharedState().TargetFPS = cfg.TargetFPS

	component.InstallDefaults(g)
	g.AddComponent(component.NewQuitter[struct{}]('q'))
	g.AddComponent(newPainter())
	g.AddComponent(newBall())

	if err := g.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "demo: %v\n", err)
		os.Exit(1)
	}
}

// ball bounces a glyph off the display edges.
type ball struct {
	engine.NopComponent[struct{}]
	x, y   float64
	vx, vy float64
}

func newBall() *ball {
	return &ball{x: 5, y: 3, vx: 24, vy: 9}
}

func (b *ball) Update(info engine.UpdateInfo, s *engine.SharedState[struct{}]) {
	w := float64(s.Display.Width)
	h := float64(s.Display.Height)

	b.x += b.vx * info.Dt
	b.y += b.vy * info.Dt

	if b.x < 0 {
		b.x, b.vx = 0, -b.vx
	}
	if b.x > w-1 {
		b.x, b.vx = w-1, -b.vx
	}
	if b.y < 0 {
		b.y, b.vy = 0, -b.vy
	}
	if b.y > h-1 {
		b.y, b.vy = h-1, -b.vy
	}
}

func (b *ball) Render(r render.Renderer, s *engine.SharedState[struct{}], depthBase int) {
	p := render.NewPixel('●').WithFg(255, 80, 80)
	r.RenderPixel(int(b.x), int(b.y), p, depthBase)
}

// painter fills cells under the pointer while the left button is down.
type painter struct {
	engine.NopComponent[struct{}]
	cells map[[2]int]struct{}
}

func newPainter() *painter {
	return &painter{cells: make(map[[2]int]struct{})}
}

func (p *painter) OnEvent(ev terminal.Event, s *engine.SharedState[struct{}]) {
	// 'c' clears the canvas
	if ev.Type == terminal.EventKey && ev.Key == terminal.KeyRune && ev.Rune == 'c' && ev.Modifiers == 0 {
		p.cells = make(map[[2]int]struct{})
	}
}

func (p *painter) Update(info engine.UpdateInfo, s *engine.SharedState[struct{}]) {
	if !s.Mouse.LeftDown {
		return
	}
	// The tracker interpolates fast strokes, so every crossed cell is here
	for _, ev := range s.MouseEvents {
		p.cells[[2]int{ev.MouseX, ev.MouseY}] = struct{}{}
	}
}

func (p *painter) Render(r render.Renderer, s *engine.SharedState[struct{}], depthBase int) {
	px := render.Pixel{Bg: render.RGB(60, 120, 200)}
	for c := range p.cells {
		r.RenderPixel(c[0], c[1], px, depthBase)
	}
}
