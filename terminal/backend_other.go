//go:build !unix

package terminal

import "errors"

// Non-unix platforms have no raw VT backend; use NewTcell there.
type stubBackend struct{}

func newBackend() Backend {
	return stubBackend{}
}

func (stubBackend) Init() error {
	return errors.New("terminal: raw backend unsupported on this platform, use NewTcell")
}

func (stubBackend) Fini()                                   {}
func (stubBackend) Size() (int, int)                        { return 80, 24 }
func (stubBackend) Write(p []byte) error                    { return nil }
func (stubBackend) Read(stopCh <-chan struct{}) ([]byte, error) {
	<-stopCh
	return nil, nil
}
func (stubBackend) SetResizeHandler(func(width, height int)) {}

func resetTerminalMode() {}
