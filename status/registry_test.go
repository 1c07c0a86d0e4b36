package status

import (
	"sync"
	"testing"
)

func TestMetricMapPointerStability(t *testing.T) {
	r := NewRegistry()
	a := r.Ints.Get("frames")
	b := r.Ints.Get("frames")
	if a != b {
		t.Error("Get returned different pointers for the same key")
	}
	a.Store(42)
	if b.Load() != 42 {
		t.Errorf("value through second pointer = %d, want 42", b.Load())
	}
}

func TestAtomicFloatAdd(t *testing.T) {
	var f AtomicFloat
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				f.Add(1)
			}
		}()
	}
	wg.Wait()
	if got := f.Get(); got != 1000 {
		t.Errorf("Add total = %v, want 1000", got)
	}
}

func TestSnapshotSorted(t *testing.T) {
	r := NewRegistry()
	r.Ints.Get("b.count").Store(2)
	r.Ints.Get("a.count").Store(1)
	r.Strings.Get("mode").Store("running")

	snap := r.Snapshot()
	if len(snap) != 3 {
		t.Fatalf("snapshot has %d lines, want 3", len(snap))
	}
	if snap[0] != "a.count=1" || snap[1] != "b.count=2" {
		t.Errorf("int metrics out of order: %v", snap)
	}
	if snap[2] != "mode=running" {
		t.Errorf("string metric = %q", snap[2])
	}
}

func TestAtomicStringTruncates(t *testing.T) {
	var s AtomicString
	long := make([]byte, MaxStringLen+10)
	for i := range long {
		long[i] = 'x'
	}
	s.Store(string(long))
	if got := s.Load(); len(got) != MaxStringLen {
		t.Errorf("stored length %d, want %d", len(got), MaxStringLen)
	}
}
