package render

import "github.com/skius/teng/terminal"

// Diff computes the instruction stream that transforms the prev frame into
// cur. Unset pixel colors resolve against defFg and defBg. With force set,
// every cell is emitted regardless of prev; without it the grids must have
// identical dimensions.
//
// The stream is ordered row-major. A cursor move is emitted only when the
// next changed cell does not follow the previous one, and a cell carries its
// style only when it differs from the cell written just before it in the
// stream; equal-style continuations use OpRepeat.
func Diff(prev, cur *Grid, defFg, defBg terminal.RGB, force bool) []terminal.Instruction {
	if !force && (prev.width != cur.width || prev.height != cur.height) {
		panic("render: diff across grid sizes requires a forced repaint")
	}

	ins := make([]terminal.Instruction, 0, 64)
	curX, curY := -1, -1
	var lastFg, lastBg terminal.RGB
	styleKnown := false

	for y := 0; y < cur.height; y++ {
		row := y * cur.width
		for x := 0; x < cur.width; x++ {
			idx := row + x
			p := cur.cells[idx]
			if !force && p == prev.cells[idx] {
				continue
			}

			if curX != x || curY != y {
				ins = append(ins, terminal.Instruction{Op: terminal.OpMoveTo, X: x, Y: y})
				curX, curY = x, y
			}

			fg := p.Fg.Or(defFg)
			bg := p.Bg.Or(defBg)
			if styleKnown && fg == lastFg && bg == lastBg {
				ins = append(ins, terminal.Instruction{Op: terminal.OpRepeat, Rune: p.Rune})
			} else {
				ins = append(ins, terminal.Instruction{
					Op:   terminal.OpCell,
					Rune: p.Rune,
					Fg:   fg,
					Bg:   bg,
				})
				lastFg, lastBg = fg, bg
				styleKnown = true
			}
			curX++
		}
	}
	return ins
}
