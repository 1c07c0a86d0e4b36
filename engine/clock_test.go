package engine

import (
	"testing"
	"time"
)

func TestClockFirstFrameHasZeroDt(t *testing.T) {
	c := NewFrameClock()
	info := c.Begin()
	if info.Dt != 0 || info.ActualDt != 0 {
		t.Errorf("first frame dt = %v/%v, want 0", info.Dt, info.ActualDt)
	}
	if !info.LastTime.IsZero() {
		t.Error("first frame has a LastTime")
	}
}

func TestClockDtClamp(t *testing.T) {
	c := NewFrameClock()
	c.lastTime = time.Now().Add(-2 * time.Second)
	info := c.Begin()
	if info.Dt != DtClamp {
		t.Errorf("Dt = %v, want clamp %v", info.Dt, DtClamp)
	}
	if info.ActualDt < 1.5 {
		t.Errorf("ActualDt = %v, want the real delta", info.ActualDt)
	}
}

func TestClockLimitSleeps(t *testing.T) {
	c := NewFrameClock()
	c.Begin()
	start := time.Now()
	c.Limit(100) // 10ms budget
	if elapsed := time.Since(start); elapsed < 5*time.Millisecond {
		t.Errorf("Limit returned after %v, expected most of the 10ms budget", elapsed)
	}
}

func TestClockLimitUnthrottled(t *testing.T) {
	c := NewFrameClock()
	c.Begin()
	start := time.Now()
	c.Limit(0)
	if elapsed := time.Since(start); elapsed > 2*time.Millisecond {
		t.Errorf("Limit(0) slept %v", elapsed)
	}
}

func TestClockLimitReportsOverrun(t *testing.T) {
	c := NewFrameClock()
	c.Begin()
	time.Sleep(5 * time.Millisecond)
	if !c.Limit(1000) { // 1ms budget, already blown
		t.Error("overrun not reported")
	}
}
