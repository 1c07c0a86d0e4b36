package engine

import (
	"fmt"
	"reflect"

	"github.com/skius/teng/status"
	"github.com/skius/teng/terminal"
)

// DisplayInfo describes the current render surface.
type DisplayInfo struct {
	Width  int
	Height int
}

// SharedState is the blackboard every component reads and writes during a
// frame. It belongs to the loop goroutine; components must not retain it
// across goroutines.
//
// Custom carries the application's own state alongside the engine-owned
// fields.
type SharedState[S any] struct {
	Display DisplayInfo

	// Elapsed is wall-clock seconds since the loop started; LastDt is the
	// current frame's clamped delta. Both maintained by the loop, readable
	// from any phase.
	Elapsed float64
	LastDt  float64

	// Keys holds the key events of the current frame, maintained by the
	// key press recorder component.
	Keys PressedKeys

	// Mouse is the latest pointer state; MouseEvents are this frame's raw
	// mouse events. Both maintained by the mouse tracker component.
	Mouse       MouseInfo
	MouseEvents []terminal.Event

	// Metrics is the process-wide metrics registry.
	Metrics *status.Registry

	// TargetFPS is the frame rate the loop aims for. Non-positive runs
	// unthrottled. Components may change it at any time.
	TargetFPS float64

	// Custom is the application state.
	Custom S

	debugMessages []string
	fakeEvents    []terminal.Event
	quit          bool

	toAdd    []Component[S]
	toRemove []reflect.Type
}

// RequestQuit asks the loop to shut down after the current frame.
func (s *SharedState[S]) RequestQuit() {
	s.quit = true
}

// QuitRequested reports whether shutdown has been requested.
func (s *SharedState[S]) QuitRequested() bool {
	return s.quit
}

// AddComponent schedules c to join the loop at the end of the current frame.
// Its Setup runs before its first event.
func (s *SharedState[S]) AddComponent(c Component[S]) {
	s.toAdd = append(s.toAdd, c)
}

// RemoveComponent schedules removal of all components with the concrete type
// of c at the end of the current frame.
func (s *SharedState[S]) RemoveComponent(c Component[S]) {
	s.toRemove = append(s.toRemove, reflect.TypeOf(c))
}

// FakeEvent injects ev at the front of the next frame's event batch.
// Components use this to talk to each other through the event stream.
func (s *SharedState[S]) FakeEvent(ev terminal.Event) {
	s.fakeEvents = append(s.fakeEvents, ev)
}

// Debugf records a message for the debug overlay. Messages accumulate until
// a display component drains them.
func (s *SharedState[S]) Debugf(format string, args ...any) {
	s.debugMessages = append(s.debugMessages, fmt.Sprintf(format, args...))
}

// DrainDebugMessages returns accumulated debug messages and clears them.
func (s *SharedState[S]) DrainDebugMessages() []string {
	out := s.debugMessages
	s.debugMessages = nil
	return out
}
