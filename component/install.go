package component

import "github.com/skius/teng/engine"

// InstallDefaults registers the stock components most applications want:
// key recording, mouse tracking, quit on Ctrl+C, and the debug overlay.
// Call before adding application components so recorders run first.
func InstallDefaults[S any](g *engine.Game[S]) {
	g.AddComponent(NewKeyPressRecorder[S]())
	g.AddComponent(NewMouseTracker[S](true))
	g.AddComponent(NewQuitter[S](0))
	g.AddComponent(NewDebugInfo[S]())
}
