package engine

import (
	"fmt"
	"reflect"
	"sync/atomic"
	"time"

	"github.com/skius/teng/event"
	"github.com/skius/teng/render"
	"github.com/skius/teng/status"
	"github.com/skius/teng/terminal"
)

// GameState tracks the loop lifecycle
type GameState uint8

const (
	StateUninitialized GameState = iota
	StateRunning
	StateShuttingDown
	StateTerminated
)

// DefaultTargetFPS is used when the application sets no frame rate.
const DefaultTargetFPS = 60

// Game owns the frame loop for one terminal session. Create with NewGame,
// register components, then Run until a component requests quit.
type Game[S any] struct {
	term     terminal.Terminal
	renderer *render.DisplayRenderer
	queue    *event.Queue
	clock    *FrameClock
	shared   *SharedState[S]

	components []Component[S]
	state      GameState

	forwarderStop chan struct{}
	forwarderDone chan struct{}

	mouseMode terminal.MouseMode

	// Cached metric pointers
	statFrames   *atomic.Int64
	statFrameNs  *atomic.Int64
	statFPS      *status.AtomicFloat
	statOverruns *atomic.Int64
	statEvents   *atomic.Int64
}

// NewGame creates a loop over term with the given application state.
func NewGame[S any](term terminal.Terminal, custom S) *Game[S] {
	reg := status.NewRegistry()
	return &Game[S]{
		term:  term,
		queue: event.NewQueue(),
		clock: NewFrameClock(),
		shared: &SharedState[S]{
			Metrics:   reg,
			TargetFPS: DefaultTargetFPS,
			Custom:    custom,
		},
		forwarderStop: make(chan struct{}),
		forwarderDone: make(chan struct{}),
		statFrames:    reg.Ints.Get("engine.frames"),
		statFrameNs:   reg.Ints.Get("engine.frame_ns"),
		statFPS:       reg.Floats.Get("engine.fps"),
		statOverruns:  reg.Ints.Get("engine.overruns"),
		statEvents:    reg.Ints.Get("engine.events"),
	}
}

// AddComponent registers c. Before Run it joins immediately at the end of
// the order; during Run it joins at the end of the current frame.
func (g *Game[S]) AddComponent(c Component[S]) {
	g.shared.AddComponent(c)
}

// SetMouseMode selects the mouse reporting Run enables once the terminal is
// up.
func (g *Game[S]) SetMouseMode(mode terminal.MouseMode) {
	g.mouseMode = mode
}

// State returns the loop lifecycle state.
func (g *Game[S]) State() GameState {
	return g.state
}

// SharedState exposes the blackboard, mainly for tests and for seeding
// application state before Run.
func (g *Game[S]) SharedState() *SharedState[S] {
	return g.shared
}

// Run executes the frame loop until a component requests quit or the sink
// fails. The terminal is initialized on entry and restored on exit, panics
// included.
func (g *Game[S]) Run() (err error) {
	if g.state != StateUninitialized {
		return fmt.Errorf("engine: Run called twice")
	}

	defer func() {
		if r := recover(); r != nil {
			// Fini before HandleCrash would race the input goroutine;
			// EmergencyReset inside handles the terminal
			HandleCrash(r)
		}
	}()

	if err := g.term.Init(); err != nil {
		return fmt.Errorf("engine: %w", err)
	}
	defer g.term.Fini()

	if g.mouseMode != terminal.MouseModeNone {
		if err := g.term.SetMouseMode(g.mouseMode); err != nil {
			return fmt.Errorf("engine: mouse mode: %w", err)
		}
	}

	w, h := g.term.Size()
	if w <= 0 || h <= 0 {
		w, h = 80, 24
	}
	g.renderer = render.NewDisplayRenderer(w, h, g.term)
	g.shared.Display = DisplayInfo{Width: w, Height: h}

	g.startForwarder()
	defer g.stopForwarder()

	g.applyPending()
	g.state = StateRunning

	for !g.shared.quit {
		if err := g.frame(); err != nil {
			g.state = StateTerminated
			return err
		}
	}

	g.state = StateShuttingDown
	for _, c := range g.components {
		c.OnQuit(g.shared)
	}
	g.state = StateTerminated
	return nil
}

// frame runs one iteration: events, updates, render, flush, limit.
func (g *Game[S]) frame() error {
	info := g.clock.Begin()
	g.shared.Elapsed += info.ActualDt
	g.shared.LastDt = info.Dt

	// Injected events run first so components see them before fresh input
	batch := g.shared.fakeEvents
	g.shared.fakeEvents = nil
	batch = append(batch, g.queue.Consume()...)
	g.statEvents.Add(int64(len(batch)))

	for _, ev := range batch {
		switch ev.Type {
		case terminal.EventResize:
			g.handleResize(ev.Width, ev.Height)
		case terminal.EventClosed:
			g.shared.RequestQuit()
		case terminal.EventError:
			g.shared.RequestQuit()
		}
		for _, c := range g.components {
			if c.IsActive(g.shared) {
				c.OnEvent(ev, g.shared)
			}
		}
	}

	for _, c := range g.components {
		if c.IsActive(g.shared) {
			c.Update(info, g.shared)
		}
	}

	g.applyPending()

	g.renderer.ResetScreen()
	for i, c := range g.components {
		if c.IsActive(g.shared) {
			c.Render(g.renderer, g.shared, i*DepthSpacing)
		}
	}
	if err := g.renderer.Flush(); err != nil {
		return fmt.Errorf("engine: flush: %w", err)
	}

	frameNs := time.Since(info.CurrentTime).Nanoseconds()
	g.statFrames.Add(1)
	g.statFrameNs.Store(frameNs)
	if info.ActualDt > 0 {
		g.statFPS.Set(1 / info.ActualDt)
	}
	if g.clock.Limit(g.shared.TargetFPS) {
		g.statOverruns.Add(1)
	}
	return nil
}

func (g *Game[S]) handleResize(w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	g.renderer.ResizeDiscard(w, h)
	g.shared.Display = DisplayInfo{Width: w, Height: h}
	for _, c := range g.components {
		c.OnResize(w, h, g.shared)
	}
}

// applyPending removes then adds deferred components. New components are set
// up immediately, and may themselves defer more additions, which also run
// before the next frame.
func (g *Game[S]) applyPending() {
	if len(g.shared.toRemove) > 0 {
		kept := g.components[:0]
		for _, c := range g.components {
			if !typeListed(g.shared.toRemove, c) {
				kept = append(kept, c)
			}
		}
		g.components = kept
		g.shared.toRemove = nil
	}

	for len(g.shared.toAdd) > 0 {
		pending := g.shared.toAdd
		g.shared.toAdd = nil
		for _, c := range pending {
			g.components = append(g.components, c)
			c.Setup(g.shared)
		}
	}
}

func typeListed[S any](types []reflect.Type, c Component[S]) bool {
	ct := reflect.TypeOf(c)
	for _, t := range types {
		if t == ct {
			return true
		}
	}
	return false
}

// startForwarder pumps terminal events into the frame queue. The extra hop
// exists because the loop must never block on the terminal channel.
func (g *Game[S]) startForwarder() {
	Go(func() {
		defer close(g.forwarderDone)
		for {
			select {
			case <-g.forwarderStop:
				return
			case ev := <-g.term.Events():
				g.queue.Push(ev)
			}
		}
	})
}

func (g *Game[S]) stopForwarder() {
	close(g.forwarderStop)
	<-g.forwarderDone
}
