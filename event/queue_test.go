package event

import (
	"sync"
	"testing"

	"github.com/skius/teng/terminal"
)

func keyEvent(r rune) terminal.Event {
	return terminal.Event{Type: terminal.EventKey, Key: terminal.KeyRune, Rune: r}
}

func TestQueueFIFO(t *testing.T) {
	q := NewQueue()
	q.Push(keyEvent('a'))
	q.Push(keyEvent('b'))
	q.Push(keyEvent('c'))

	got := q.Consume()
	if len(got) != 3 {
		t.Fatalf("got %d events, want 3", len(got))
	}
	for i, want := range []rune{'a', 'b', 'c'} {
		if got[i].Rune != want {
			t.Errorf("event %d = %q, want %q", i, got[i].Rune, want)
		}
	}
	if again := q.Consume(); again != nil {
		t.Errorf("second consume returned %d events", len(again))
	}
}

func TestQueueEmpty(t *testing.T) {
	q := NewQueue()
	if got := q.Consume(); got != nil {
		t.Errorf("empty queue returned %v", got)
	}
	if q.Len() != 0 {
		t.Errorf("empty queue Len = %d", q.Len())
	}
}

func TestQueueOverflowDropsOldest(t *testing.T) {
	q := NewQueue()
	total := QueueSize + 50
	for i := 0; i < total; i++ {
		q.Push(keyEvent(rune('0' + i%10)))
	}

	got := q.Consume()
	if len(got) > QueueSize {
		t.Fatalf("consumed %d events, capacity %d", len(got), QueueSize)
	}
	// The newest event must survive overflow
	last := got[len(got)-1]
	if want := rune('0' + (total-1)%10); last.Rune != want {
		t.Errorf("newest event = %q, want %q", last.Rune, want)
	}
}

func TestQueueConcurrentProducers(t *testing.T) {
	q := NewQueue()
	const producers = 8
	const perProducer = 20 // Stays under capacity so nothing is dropped

	var wg sync.WaitGroup
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perProducer; i++ {
				q.Push(keyEvent('x'))
			}
		}()
	}
	wg.Wait()

	total := 0
	for {
		got := q.Consume()
		if got == nil {
			break
		}
		total += len(got)
	}
	if total != producers*perProducer {
		t.Errorf("consumed %d events, want %d", total, producers*perProducer)
	}
}
