package engine

import "time"

// UpdateInfo carries frame timing into component updates.
type UpdateInfo struct {
	// LastTime is when the previous frame began; zero on the first frame.
	LastTime time.Time

	// CurrentTime is when this frame began.
	CurrentTime time.Time

	// Dt is CurrentTime minus LastTime in seconds, clamped to DtClamp.
	// Long stalls (debugger, suspend) otherwise produce physics jumps.
	Dt float64

	// ActualDt is the unclamped frame-to-frame delta in seconds.
	ActualDt float64
}

// DtClamp is the maximum Dt handed to updates, in seconds.
const DtClamp = 0.25

// FrameClock measures frame deltas and enforces a target frame rate.
// Sleep overshoot is measured and deducted from the next frame's sleep, so
// the average rate holds even though time.Sleep routinely oversleeps.
type FrameClock struct {
	lastTime  time.Time
	oversleep time.Duration
}

func NewFrameClock() *FrameClock {
	return &FrameClock{}
}

// Begin marks the start of a frame and returns its timing info.
func (c *FrameClock) Begin() UpdateInfo {
	now := time.Now()
	info := UpdateInfo{
		LastTime:    c.lastTime,
		CurrentTime: now,
	}
	if !c.lastTime.IsZero() {
		info.ActualDt = now.Sub(c.lastTime).Seconds()
		info.Dt = info.ActualDt
		if info.Dt > DtClamp {
			info.Dt = DtClamp
		}
	}
	c.lastTime = now
	return info
}

// Limit sleeps off the rest of the frame budget for targetFPS. A
// non-positive target disables limiting. Returns true when the frame
// overran its budget before Limit was called.
func (c *FrameClock) Limit(targetFPS float64) bool {
	if targetFPS <= 0 {
		c.oversleep = 0
		return false
	}

	budget := time.Duration(float64(time.Second) / targetFPS)
	elapsed := time.Since(c.lastTime)
	remaining := budget - elapsed - c.oversleep

	if remaining <= 0 {
		c.oversleep = 0
		return elapsed > budget
	}

	before := time.Now()
	time.Sleep(remaining)
	c.oversleep = time.Since(before) - remaining
	if c.oversleep < 0 {
		c.oversleep = 0
	}
	return false
}
