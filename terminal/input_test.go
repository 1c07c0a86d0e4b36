package terminal

import "testing"

// collectParse feeds data through an inputReader's parser and returns the
// decoded events plus the consumed byte count.
func collectParse(t *testing.T, data []byte) ([]Event, int) {
	t.Helper()
	ch := make(chan Event, 64)
	r := newInputReader(nil, ch)
	consumed := r.parse(data)

	var evs []Event
	for {
		select {
		case ev := <-ch:
			evs = append(evs, ev)
		default:
			return evs, consumed
		}
	}
}

func TestParsePrintable(t *testing.T) {
	evs, consumed := collectParse(t, []byte("ab"))
	if consumed != 2 || len(evs) != 2 {
		t.Fatalf("consumed=%d events=%d", consumed, len(evs))
	}
	if evs[0].Key != KeyRune || evs[0].Rune != 'a' {
		t.Errorf("evs[0] = %+v", evs[0])
	}
}

func TestParseUTF8(t *testing.T) {
	evs, consumed := collectParse(t, []byte("ä"))
	if len(evs) != 1 || evs[0].Rune != 'ä' {
		t.Fatalf("evs = %+v", evs)
	}
	if consumed != 2 {
		t.Errorf("consumed = %d", consumed)
	}

	// Split rune: first byte alone must not be consumed
	_, consumed = collectParse(t, []byte("ä")[:1])
	if consumed != 0 {
		t.Errorf("partial rune consumed %d bytes", consumed)
	}
}

func TestParseControl(t *testing.T) {
	cases := []struct {
		in   byte
		key  Key
		rune rune
		mod  Modifier
	}{
		{0x0d, KeyEnter, 0, 0},
		{0x09, KeyTab, 0, 0},
		{0x7f, KeyBackspace, 0, 0},
		{0x03, KeyRune, 'c', ModCtrl},
		{0x01, KeyRune, 'a', ModCtrl},
	}
	for _, c := range cases {
		evs, _ := collectParse(t, []byte{c.in})
		if len(evs) != 1 {
			t.Fatalf("byte %#x: %d events", c.in, len(evs))
		}
		ev := evs[0]
		if ev.Key != c.key || ev.Rune != c.rune || ev.Modifiers != c.mod {
			t.Errorf("byte %#x = %+v, want key=%d rune=%q mod=%d", c.in, ev, c.key, c.rune, c.mod)
		}
	}
}

func TestParseCSIKeys(t *testing.T) {
	cases := []struct {
		in  string
		key Key
		mod Modifier
	}{
		{"\x1b[A", KeyUp, 0},
		{"\x1b[D", KeyLeft, 0},
		{"\x1b[3~", KeyDelete, 0},
		{"\x1b[5~", KeyPageUp, 0},
		{"\x1b[1;5C", KeyRight, ModCtrl},
		{"\x1b[Z", KeyBacktab, ModShift},
		{"\x1b[24~", KeyF12, 0},
		{"\x1bOP", KeyF1, 0},
	}
	for _, c := range cases {
		evs, consumed := collectParse(t, []byte(c.in))
		if consumed != len(c.in) {
			t.Errorf("%q: consumed %d of %d", c.in, consumed, len(c.in))
		}
		if len(evs) != 1 || evs[0].Key != c.key || evs[0].Modifiers != c.mod {
			t.Errorf("%q = %+v, want key=%d mod=%d", c.in, evs, c.key, c.mod)
		}
	}
}

func TestParseAltRune(t *testing.T) {
	evs, _ := collectParse(t, []byte("\x1bx"))
	if len(evs) != 1 || evs[0].Rune != 'x' || evs[0].Modifiers != ModAlt {
		t.Errorf("evs = %+v", evs)
	}
}

func TestParseIncompleteCSIWaits(t *testing.T) {
	_, consumed := collectParse(t, []byte("\x1b[1;5"))
	if consumed != 0 {
		t.Errorf("incomplete sequence consumed %d bytes", consumed)
	}
}

func TestParseUnknownCSISwallowed(t *testing.T) {
	evs, consumed := collectParse(t, []byte("\x1b[99q"))
	if consumed != 5 {
		t.Errorf("consumed %d, want 5", consumed)
	}
	if len(evs) != 0 {
		t.Errorf("unknown sequence leaked events: %+v", evs)
	}
}

func TestParseSGRMouse(t *testing.T) {
	cases := []struct {
		in     string
		btn    MouseButton
		action MouseAction
		x, y   int
		mod    Modifier
	}{
		{"\x1b[<0;10;5M", MouseBtnLeft, MouseActionPress, 9, 4, 0},
		{"\x1b[<0;10;5m", MouseBtnLeft, MouseActionRelease, 9, 4, 0},
		{"\x1b[<2;1;1M", MouseBtnRight, MouseActionPress, 0, 0, 0},
		{"\x1b[<32;3;3M", MouseBtnLeft, MouseActionDrag, 2, 2, 0},
		{"\x1b[<35;7;2M", MouseBtnNone, MouseActionMove, 6, 1, 0},
		{"\x1b[<64;1;1M", MouseBtnWheelUp, MouseActionPress, 0, 0, 0},
		{"\x1b[<65;1;1M", MouseBtnWheelDown, MouseActionPress, 0, 0, 0},
		{"\x1b[<16;2;2M", MouseBtnLeft, MouseActionPress, 1, 1, ModCtrl},
	}
	for _, c := range cases {
		evs, consumed := collectParse(t, []byte(c.in))
		if consumed != len(c.in) || len(evs) != 1 {
			t.Fatalf("%q: consumed=%d events=%d", c.in, consumed, len(evs))
		}
		ev := evs[0]
		if ev.Type != EventMouse || ev.MouseBtn != c.btn || ev.MouseAction != c.action {
			t.Errorf("%q = %+v, want btn=%d action=%d", c.in, ev, c.btn, c.action)
		}
		if ev.MouseX != c.x || ev.MouseY != c.y {
			t.Errorf("%q at (%d,%d), want (%d,%d)", c.in, ev.MouseX, ev.MouseY, c.x, c.y)
		}
		if ev.Modifiers != c.mod {
			t.Errorf("%q mod = %d, want %d", c.in, ev.Modifiers, c.mod)
		}
	}
}

func TestParseDoubleEscape(t *testing.T) {
	evs, consumed := collectParse(t, []byte("\x1b\x1b"))
	if consumed != 2 || len(evs) != 1 {
		t.Fatalf("consumed=%d events=%d", consumed, len(evs))
	}
	if evs[0].Key != KeyEscape || evs[0].Modifiers != ModAlt {
		t.Errorf("evs[0] = %+v", evs[0])
	}
}

func TestParseInterleavedSequences(t *testing.T) {
	evs, consumed := collectParse(t, []byte("a\x1b[Ab"))
	if consumed != 5 || len(evs) != 3 {
		t.Fatalf("consumed=%d events=%+v", consumed, evs)
	}
	if evs[0].Rune != 'a' || evs[1].Key != KeyUp || evs[2].Rune != 'b' {
		t.Errorf("events = %+v", evs)
	}
}
