package terminal

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync"
	"unicode/utf8"
)

// EventType distinguishes input event categories
type EventType uint8

const (
	EventKey EventType = iota
	EventMouse
	EventResize
	EventError  // Read error, see Event.Err
	EventClosed // Input source closed
)

// Event is a decoded terminal input event
type Event struct {
	Type      EventType
	Key       Key
	Rune      rune
	Modifiers Modifier

	Width  int // EventResize
	Height int // EventResize

	Err error // EventError

	MouseX      int
	MouseY      int
	MouseBtn    MouseButton
	MouseAction MouseAction
}

// inputReader decodes the raw byte stream from a Backend into events
type inputReader struct {
	backend Backend
	eventCh chan<- Event
	stopCh  chan struct{}
	doneCh  chan struct{}
	mu      sync.Mutex
	running bool

	// Stream assembly buffer; sequences and UTF-8 runes may arrive split
	// across reads
	buf []byte
}

func newInputReader(backend Backend, eventCh chan<- Event) *inputReader {
	return &inputReader{
		backend: backend,
		eventCh: eventCh,
		stopCh:  make(chan struct{}),
		doneCh:  make(chan struct{}),
		buf:     make([]byte, 0, 256),
	}
}

func (r *inputReader) start() {
	r.mu.Lock()
	if r.running {
		r.mu.Unlock()
		return
	}
	r.running = true
	r.mu.Unlock()

	go r.readLoop()
}

func (r *inputReader) stop() {
	r.mu.Lock()
	if !r.running {
		r.mu.Unlock()
		return
	}
	r.running = false
	r.mu.Unlock()

	close(r.stopCh)
	<-r.doneCh
}

func (r *inputReader) readLoop() {
	defer close(r.doneCh)

	defer func() {
		if rec := recover(); rec != nil {
			EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\r\n\x1b[31mINPUT READER CRASHED: %v\x1b[0m\r\n", rec)
			fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
			os.Exit(1)
		}
	}()

	for {
		data, err := r.backend.Read(r.stopCh)
		if err != nil {
			r.send(Event{Type: EventError, Err: err})
			return
		}

		if len(data) == 0 {
			// Poll timeout. A lone buffered ESC is a real Escape press,
			// not the start of a sequence.
			if len(r.buf) == 1 && r.buf[0] == 0x1b {
				r.send(Event{Type: EventKey, Key: KeyEscape})
				r.buf = r.buf[:0]
			}
			select {
			case <-r.stopCh:
				r.send(Event{Type: EventClosed})
				return
			default:
				continue
			}
		}

		r.buf = append(r.buf, data...)

		consumed := r.parse(r.buf)
		if consumed > 0 {
			r.buf = r.buf[:copy(r.buf, r.buf[consumed:])]
		}
	}
}

// parse decodes as many complete events as possible and returns the number
// of bytes consumed. Stops at an incomplete trailing sequence.
func (r *inputReader) parse(data []byte) int {
	i := 0
	n := len(data)

	for i < n {
		b := data[i]

		// Printable ASCII fast path
		if b >= 0x20 && b < 0x7f {
			r.send(Event{Type: EventKey, Key: KeyRune, Rune: rune(b)})
			i++
			continue
		}

		if b == 0x1b {
			if i+1 >= n {
				return i // Possibly a sequence start, wait
			}
			consumed, ev, ok := parseEscape(data[i:])
			if consumed == 0 {
				return i
			}
			if ok {
				r.send(ev)
			}
			i += consumed
			continue
		}

		if b < 0x20 {
			r.send(controlEvent(b))
			i++
			continue
		}

		if b == 0x7f {
			r.send(Event{Type: EventKey, Key: KeyBackspace})
			i++
			continue
		}

		// UTF-8 multibyte
		if !utf8.FullRune(data[i:]) {
			return i
		}
		rn, size := utf8.DecodeRune(data[i:])
		r.send(Event{Type: EventKey, Key: KeyRune, Rune: rn})
		i += size
	}
	return i
}

// controlEvent maps C0 control bytes. Ctrl+letter is reported as the
// lowercase rune with ModCtrl; bytes with dedicated keys take those.
func controlEvent(b byte) Event {
	switch b {
	case 0x08:
		return Event{Type: EventKey, Key: KeyBackspace}
	case 0x09:
		return Event{Type: EventKey, Key: KeyTab}
	case 0x0a, 0x0d:
		return Event{Type: EventKey, Key: KeyEnter}
	case 0x1b:
		return Event{Type: EventKey, Key: KeyEscape}
	case 0x00:
		return Event{Type: EventKey, Key: KeyRune, Rune: ' ', Modifiers: ModCtrl}
	}
	if b >= 0x01 && b <= 0x1a {
		return Event{Type: EventKey, Key: KeyRune, Rune: rune('a' + b - 1), Modifiers: ModCtrl}
	}
	// 0x1c-0x1f: Ctrl+\ Ctrl+] Ctrl+^ Ctrl+_
	return Event{Type: EventKey, Key: KeyRune, Rune: rune('\\' + b - 0x1c), Modifiers: ModCtrl}
}

// parseEscape decodes one escape sequence. Returns consumed=0 when the
// sequence is incomplete, ok=false when it was consumed but produced no
// event (unknown sequences are swallowed, not leaked as garbage input).
func parseEscape(data []byte) (consumed int, ev Event, ok bool) {
	if len(data) < 2 {
		return 0, Event{}, false
	}

	switch {
	case data[1] == 0x1b:
		return 2, Event{Type: EventKey, Key: KeyEscape, Modifiers: ModAlt}, true
	case data[1] == '[':
		return parseCSI(data)
	case data[1] == 'O':
		return parseSS3(data)
	case data[1] < 0x20:
		e := controlEvent(data[1])
		e.Modifiers |= ModAlt
		return 2, e, true
	case data[1] < 0x7f:
		return 2, Event{Type: EventKey, Key: KeyRune, Rune: rune(data[1]), Modifiers: ModAlt}, true
	}
	return 2, Event{}, false
}

func parseCSI(data []byte) (int, Event, bool) {
	if len(data) < 3 {
		return 0, Event{}, false
	}

	// SGR mouse: ESC [ < btn ; x ; y M|m
	if data[2] == '<' {
		return parseSGRMouse(data)
	}

	end := 2
	limit := min(len(data), 16)
	for end < limit {
		b := data[end]
		end++
		if (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z') || b == '~' {
			if key, mod, found := lookupCSI(data[2:end]); found {
				return end, Event{Type: EventKey, Key: key, Modifiers: mod}, true
			}
			return end, Event{}, false // Valid but unknown, swallow
		}
		if b < 0x20 || b > 0x7e {
			return end, Event{}, false // Malformed, drop
		}
	}
	if end >= 16 {
		return end, Event{}, false // Runaway sequence, drop
	}
	return 0, Event{}, false // Incomplete
}

func parseSS3(data []byte) (int, Event, bool) {
	if len(data) < 3 {
		return 0, Event{}, false
	}
	if key, found := lookupSS3(data[2]); found {
		return 3, Event{Type: EventKey, Key: key}, true
	}
	return 3, Event{}, false
}

// parseSGRMouse decodes ESC [ < btn ; x ; y M|m
func parseSGRMouse(data []byte) (int, Event, bool) {
	end := 3
	limit := min(len(data), 32)
	for end < limit && data[end] != 'M' && data[end] != 'm' {
		end++
	}
	if end >= limit {
		if end >= 32 {
			return end, Event{}, false // Runaway, drop
		}
		return 0, Event{}, false // Incomplete
	}

	btn, x, y, paramsOK := parseSGRParams(data[3:end])
	if !paramsOK {
		return end + 1, Event{}, false
	}

	ev := Event{Type: EventMouse, MouseX: x - 1, MouseY: y - 1}

	// Button byte: bits 0-1 button, bit 2-4 modifiers, bit 5 motion, bit 6 wheel
	buttonID := btn & 0x03
	isMotion := btn&32 != 0
	isWheel := btn&64 != 0

	switch {
	case isWheel:
		if buttonID == 0 {
			ev.MouseBtn = MouseBtnWheelUp
		} else {
			ev.MouseBtn = MouseBtnWheelDown
		}
		ev.MouseAction = MouseActionPress
	default:
		switch buttonID {
		case 0:
			ev.MouseBtn = MouseBtnLeft
		case 1:
			ev.MouseBtn = MouseBtnMiddle
		case 2:
			ev.MouseBtn = MouseBtnRight
		case 3:
			ev.MouseBtn = MouseBtnNone
		}
		switch {
		case data[end] == 'm':
			ev.MouseAction = MouseActionRelease
		case isMotion && ev.MouseBtn != MouseBtnNone:
			ev.MouseAction = MouseActionDrag
		case isMotion:
			ev.MouseAction = MouseActionMove
		default:
			ev.MouseAction = MouseActionPress
		}
	}

	if btn&4 != 0 {
		ev.Modifiers |= ModShift
	}
	if btn&8 != 0 {
		ev.Modifiers |= ModAlt
	}
	if btn&16 != 0 {
		ev.Modifiers |= ModCtrl
	}

	return end + 1, ev, true
}

// parseSGRParams extracts "btn;x;y"
func parseSGRParams(data []byte) (btn, x, y int, ok bool) {
	vals := [3]int{}
	field := 0
	for _, b := range data {
		switch {
		case b == ';':
			field++
			if field > 2 {
				return 0, 0, 0, false
			}
		case b >= '0' && b <= '9':
			vals[field] = vals[field]*10 + int(b-'0')
			if vals[field] > 9999 {
				return 0, 0, 0, false
			}
		default:
			return 0, 0, 0, false
		}
	}
	if field != 2 {
		return 0, 0, 0, false
	}
	return vals[0], vals[1], vals[2], true
}

// send delivers an event without blocking; input is droppable under
// backpressure, a stalled frame loop must not stall the reader
func (r *inputReader) send(ev Event) {
	select {
	case r.eventCh <- ev:
	default:
	}
}
