package engine

import (
	"github.com/skius/teng/render"
	"github.com/skius/teng/terminal"
)

// Component is a unit of behavior and drawing in the frame loop. Methods are
// called from the loop goroutine only; components need no locking for their
// own state.
//
// Embed NopComponent to implement only the methods a component cares about.
type Component[S any] interface {
	// Setup runs once, when the component enters the loop.
	Setup(state *SharedState[S])

	// OnEvent receives every event of the frame, in arrival order. All
	// active components see all events.
	OnEvent(ev terminal.Event, state *SharedState[S])

	// OnResize runs after the display has been resized, before Update.
	OnResize(width, height int, state *SharedState[S])

	// Update advances component state. Runs in registration order.
	Update(info UpdateInfo, state *SharedState[S])

	// Render draws the component. depthBase is the bottom of the depth band
	// reserved for this component; later components get higher bands.
	Render(r render.Renderer, state *SharedState[S], depthBase int)

	// OnQuit runs once during shutdown.
	OnQuit(state *SharedState[S])

	// IsActive gates event delivery, updates, and rendering. Inactive
	// components stay registered but dormant.
	IsActive(state *SharedState[S]) bool
}

// DepthSpacing is the size of the depth band each component receives.
// A component draws within [depthBase, depthBase+DepthSpacing).
const DepthSpacing = 100

// NopComponent is a no-op implementation of every Component method except
// Render. Embed it and override what you need.
type NopComponent[S any] struct{}

func (NopComponent[S]) Setup(*SharedState[S])                        {}
func (NopComponent[S]) OnEvent(terminal.Event, *SharedState[S])      {}
func (NopComponent[S]) OnResize(int, int, *SharedState[S])           {}
func (NopComponent[S]) Update(UpdateInfo, *SharedState[S])           {}
func (NopComponent[S]) Render(render.Renderer, *SharedState[S], int) {}
func (NopComponent[S]) OnQuit(*SharedState[S])                       {}
func (NopComponent[S]) IsActive(*SharedState[S]) bool                { return true }
