package render

import (
	"testing"

	"github.com/skius/teng/terminal"
)

func rgb(r, g, b uint8) terminal.RGB {
	return terminal.RGB{R: r, G: g, B: b}
}

func TestGridDepthGate(t *testing.T) {
	g := NewGrid(4, 4)

	g.Set(1, 1, NewPixel('a'), 10)
	g.Set(1, 1, NewPixel('b'), 5) // Occluded
	p, _ := g.At(1, 1)
	if p.Rune != 'a' {
		t.Errorf("lower depth overwrote: got %q, want %q", p.Rune, 'a')
	}

	g.Set(1, 1, NewPixel('c'), 10) // Tie, later write wins
	p, _ = g.At(1, 1)
	if p.Rune != 'c' {
		t.Errorf("equal depth did not overwrite: got %q, want %q", p.Rune, 'c')
	}

	g.Set(1, 1, NewPixel('d'), 11)
	p, _ = g.At(1, 1)
	if p.Rune != 'd' {
		t.Errorf("higher depth did not overwrite: got %q, want %q", p.Rune, 'd')
	}
	d, _ := g.DepthAt(1, 1)
	if d != 11 {
		t.Errorf("depth not updated: got %d, want 11", d)
	}
}

func TestGridNegativeDepthBeatsUnset(t *testing.T) {
	g := NewGrid(2, 2)
	g.Set(0, 0, NewPixel('x'), -1000)
	p, _ := g.At(0, 0)
	if p.Rune != 'x' {
		t.Errorf("negative depth write on untouched cell dropped: got %q", p.Rune)
	}
}

func TestGridOutOfBounds(t *testing.T) {
	g := NewGrid(3, 2)
	// Must not panic, must not modify anything
	g.Set(-1, 0, NewPixel('x'), 0)
	g.Set(3, 0, NewPixel('x'), 0)
	g.Set(0, -1, NewPixel('x'), 0)
	g.Set(0, 2, NewPixel('x'), 0)

	if _, ok := g.At(3, 0); ok {
		t.Error("At out of bounds reported ok")
	}
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			if d, _ := g.DepthAt(x, y); d != DepthUnset {
				t.Errorf("cell (%d,%d) touched by out-of-bounds writes", x, y)
			}
		}
	}
}

func TestGridCompose(t *testing.T) {
	g := NewGrid(2, 1)

	g.Set(0, 0, NewPixel('a').WithFg(10, 20, 30).WithBg(1, 2, 3), 0)
	// Transparent glyph and bg at higher depth: fg wins, rest shows through
	g.Set(0, 0, Pixel{Fg: RGB(200, 0, 0)}, 5)

	p, _ := g.At(0, 0)
	if p.Rune != 'a' {
		t.Errorf("glyph did not show through: got %q", p.Rune)
	}
	if got := p.Fg.Or(rgb(0, 0, 0)); got != (rgb(200, 0, 0)) {
		t.Errorf("fg not replaced: got %v", got)
	}
	if got := p.Bg.Or(rgb(9, 9, 9)); got != (rgb(1, 2, 3)) {
		t.Errorf("bg did not show through: got %v", got)
	}
}

func TestGridClearAndResize(t *testing.T) {
	g := NewGrid(5, 3)
	g.Set(4, 2, NewPixel('z'), 7)
	g.Clear()
	if d, _ := g.DepthAt(4, 2); d != DepthUnset {
		t.Errorf("Clear left depth %d", d)
	}
	if p, _ := g.At(4, 2); p != (Pixel{}) {
		t.Errorf("Clear left pixel %+v", p)
	}

	g.Resize(2, 2)
	if g.Width() != 2 || g.Height() != 2 {
		t.Errorf("Resize got %dx%d", g.Width(), g.Height())
	}
	if _, ok := g.At(4, 2); ok {
		t.Error("old bounds still addressable after shrink")
	}

	defer func() {
		if recover() == nil {
			t.Error("Resize(0, 5) did not panic")
		}
	}()
	g.Resize(0, 5)
}
