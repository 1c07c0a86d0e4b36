// Package engine runs the frame loop: consume input, update components,
// compose a frame, flush the diff, limit the frame rate. Applications
// implement Component and hand instances to a Game.
//
// One frame, in order: pending events are drained and broadcast to every
// active component, components update in registration order, each active
// component renders at its own depth band, the renderer flushes, the clock
// sleeps off the remaining frame budget.
package engine
