package render

import (
	"fmt"
	"math"
)

// DepthUnset is the depth of an untouched cell. Any write, at any depth,
// lands on an untouched cell.
const DepthUnset = math.MinInt

// Grid is a fixed-size pixel buffer with a per-cell depth. Writes are
// depth-gated: a pixel lands only when its depth is at least the depth
// already recorded at that cell, and later writes win ties.
type Grid struct {
	width  int
	height int
	cells  []Pixel
	depth  []int
}

// NewGrid creates a cleared grid. Panics on non-positive dimensions.
func NewGrid(width, height int) *Grid {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("render: invalid grid size %dx%d", width, height))
	}
	g := &Grid{
		width:  width,
		height: height,
		cells:  make([]Pixel, width*height),
		depth:  make([]int, width*height),
	}
	g.Clear()
	return g
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

// Set draws p at (x, y) with the given depth. Out-of-bounds coordinates are
// ignored. When the write survives the depth gate, p is composed over the
// existing pixel so unset parts of p inherit what was already there.
func (g *Grid) Set(x, y int, p Pixel, depth int) {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return
	}
	idx := y*g.width + x
	if depth < g.depth[idx] {
		return
	}
	if g.depth[idx] == DepthUnset {
		g.cells[idx] = p
	} else {
		g.cells[idx] = p.PutOver(g.cells[idx])
	}
	g.depth[idx] = depth
}

// At returns the composed pixel at (x, y). The second return is false out of
// bounds.
func (g *Grid) At(x, y int) (Pixel, bool) {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return Pixel{}, false
	}
	return g.cells[y*g.width+x], true
}

// DepthAt returns the recorded depth at (x, y), DepthUnset for untouched
// cells. The second return is false out of bounds.
func (g *Grid) DepthAt(x, y int) (int, bool) {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return 0, false
	}
	return g.depth[y*g.width+x], true
}

// Clear resets every cell to empty and every depth to DepthUnset.
func (g *Grid) Clear() {
	g.cells[0] = Pixel{}
	g.depth[0] = DepthUnset
	// Doubling copy fills in O(log n) memmoves
	for i := 1; i < len(g.cells); i *= 2 {
		copy(g.cells[i:], g.cells[:i])
		copy(g.depth[i:], g.depth[:i])
	}
}

// Resize changes the grid dimensions and clears it. Previous content does not
// survive a resize. Panics on non-positive dimensions.
func (g *Grid) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("render: invalid grid size %dx%d", width, height))
	}
	n := width * height
	if n > cap(g.cells) {
		g.cells = make([]Pixel, n)
		g.depth = make([]int, n)
	} else {
		g.cells = g.cells[:n]
		g.depth = g.depth[:n]
	}
	g.width = width
	g.height = height
	g.Clear()
}
