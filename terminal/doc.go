// Package terminal provides low-level terminal access for the engine:
// raw-mode setup and teardown, input decoding, color capability detection,
// and the frame writer that turns render instructions into escape-sequence
// bytes.
//
// The package is split along a Backend interface so the same Terminal
// implementation works on any platform that can provide raw byte I/O and a
// resize notification. A tcell-backed Terminal is available for environments
// without direct VT access.
//
// Nothing in this package knows about pixels, depth, or components. The only
// shared contract with the render package is the Instruction type.
package terminal
