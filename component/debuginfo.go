package component

import (
	"fmt"
	"math"

	"github.com/skius/teng/engine"
	"github.com/skius/teng/render"
	"github.com/skius/teng/terminal"
)

// debugDepth puts the overlay above everything a normally-banded component
// can draw.
const debugDepth = math.MaxInt32 - 100

// fpsSampleWindow is how many frames feed the displayed average.
const fpsSampleWindow = 120

// DebugInfo is an overlay showing frame timing, metrics, and messages from
// SharedState.Debugf. Toggled with F12; starts hidden.
type DebugInfo[S any] struct {
	engine.NopComponent[S]

	visible bool

	samples  [fpsSampleWindow]float64
	sampleN  int
	sampleI  int
	sinceFPS float64
	fps      float64

	messages []string
}

func NewDebugInfo[S any]() *DebugInfo[S] {
	return &DebugInfo[S]{}
}

func (d *DebugInfo[S]) OnEvent(ev terminal.Event, state *engine.SharedState[S]) {
	if ev.Type == terminal.EventKey && ev.Key == terminal.KeyF12 {
		d.visible = !d.visible
	}
}

func (d *DebugInfo[S]) Update(info engine.UpdateInfo, state *engine.SharedState[S]) {
	if info.ActualDt > 0 {
		d.samples[d.sampleI] = info.ActualDt
		d.sampleI = (d.sampleI + 1) % fpsSampleWindow
		if d.sampleN < fpsSampleWindow {
			d.sampleN++
		}
	}

	// Refresh the displayed number at 5Hz; per-frame it is unreadable
	d.sinceFPS += info.Dt
	if d.sinceFPS >= 0.2 {
		d.sinceFPS = 0
		d.fps = d.average()
	}

	if msgs := state.DrainDebugMessages(); len(msgs) > 0 {
		d.messages = append(d.messages, msgs...)
		if len(d.messages) > 8 {
			d.messages = d.messages[len(d.messages)-8:]
		}
	}
}

func (d *DebugInfo[S]) average() float64 {
	if d.sampleN == 0 {
		return 0
	}
	var sum float64
	for i := 0; i < d.sampleN; i++ {
		sum += d.samples[i]
	}
	if sum == 0 {
		return 0
	}
	return float64(d.sampleN) / sum
}

func (d *DebugInfo[S]) Render(r render.Renderer, state *engine.SharedState[S], depthBase int) {
	if !d.visible {
		return
	}

	y := 0
	d.line(r, 0, y, fmt.Sprintf("fps %.1f  target %.0f  %dx%d",
		d.fps, state.TargetFPS, state.Display.Width, state.Display.Height))
	y++

	frameNs := state.Metrics.Ints.Get("engine.frame_ns").Load()
	frames := state.Metrics.Ints.Get("engine.frames").Load()
	overruns := state.Metrics.Ints.Get("engine.overruns").Load()
	d.line(r, 0, y, fmt.Sprintf("frame %.2fms  total %d  overruns %d",
		float64(frameNs)/1e6, frames, overruns))
	y++

	for _, msg := range d.messages {
		d.line(r, 0, y, msg)
		y++
	}

	y++
	for _, kv := range state.Metrics.Snapshot() {
		if y >= state.Display.Height {
			break
		}
		d.line(r, 0, y, kv)
		y++
	}
}

func (d *DebugInfo[S]) line(r render.Renderer, x, y int, s string) {
	for i, ch := range s {
		p := render.NewPixel(ch).WithFg(255, 255, 0).WithBg(0, 0, 0)
		r.RenderPixel(x+i, y, p, debugDepth)
	}
}
