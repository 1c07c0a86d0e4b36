package component

import "github.com/skius/teng/engine"

// FPSLocker pins SharedState.TargetFPS every frame, so stray writes by
// other components cannot change the frame rate.
type FPSLocker[S any] struct {
	engine.NopComponent[S]

	FPS float64
}

func NewFPSLocker[S any](fps float64) *FPSLocker[S] {
	return &FPSLocker[S]{FPS: fps}
}

func (f *FPSLocker[S]) Setup(state *engine.SharedState[S]) {
	state.TargetFPS = f.FPS
}

func (f *FPSLocker[S]) Update(info engine.UpdateInfo, state *engine.SharedState[S]) {
	state.TargetFPS = f.FPS
}
