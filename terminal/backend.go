package terminal

// Backend abstracts platform-specific terminal I/O. termImpl builds the full
// Terminal behavior (input decoding, frame writing, lifecycle sequences) on
// top of this narrow surface.
type Backend interface {
	// Init puts the terminal into raw mode.
	Init() error

	// Fini undoes Init. Safe to call when Init failed.
	Fini()

	// Size returns terminal dimensions in cells.
	Size() (width, height int)

	// Write writes raw bytes to the terminal output.
	Write(p []byte) error

	// Read blocks until input is available or the stop channel closes.
	// A nil, nil return means timeout or stop; callers loop.
	Read(stopCh <-chan struct{}) ([]byte, error)

	// SetResizeHandler registers a callback invoked on terminal resize.
	SetResizeHandler(handler func(width, height int))
}
