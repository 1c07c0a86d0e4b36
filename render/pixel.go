package render

import "github.com/skius/teng/terminal"

// Color is an optional cell color. The zero value is unset: it resolves to
// the renderer's default at flush time and lets lower pixels show through
// when composing.
type Color struct {
	rgb   terminal.RGB
	solid bool
}

// RGB creates a solid color.
func RGB(r, g, b uint8) Color {
	return Color{rgb: terminal.RGB{R: r, G: g, B: b}, solid: true}
}

// FromRGB wraps a terminal color as a solid Color.
func FromRGB(c terminal.RGB) Color {
	return Color{rgb: c, solid: true}
}

// Solid reports whether the color carries an actual value.
func (c Color) Solid() bool {
	return c.solid
}

// Or returns the color value, or def when unset.
func (c Color) Or(def terminal.RGB) terminal.RGB {
	if c.solid {
		return c.rgb
	}
	return def
}

// Over composes c on top of below: c wins when solid, otherwise below shows
// through.
func (c Color) Over(below Color) Color {
	if c.solid {
		return c
	}
	return below
}

// Pixel is one composed cell: a glyph and optional foreground and background
// colors. A zero Rune means no glyph; it renders as a space but lets a lower
// pixel's glyph show through when composing.
type Pixel struct {
	Rune rune
	Fg   Color
	Bg   Color
}

// NewPixel creates a pixel with the given glyph and unset colors.
func NewPixel(r rune) Pixel {
	return Pixel{Rune: r}
}

// Transparent is the fully see-through pixel: no glyph, no colors. Drawing it
// claims depth without changing what shows.
func Transparent() Pixel {
	return Pixel{}
}

// WithFg returns a copy with a solid foreground.
func (p Pixel) WithFg(r, g, b uint8) Pixel {
	p.Fg = RGB(r, g, b)
	return p
}

// WithBg returns a copy with a solid background.
func (p Pixel) WithBg(r, g, b uint8) Pixel {
	p.Bg = RGB(r, g, b)
	return p
}

// PutOver composes p on top of below. Set parts of p win; unset parts
// inherit from below.
func (p Pixel) PutOver(below Pixel) Pixel {
	out := p
	if out.Rune == 0 {
		out.Rune = below.Rune
	}
	out.Fg = p.Fg.Over(below.Fg)
	out.Bg = p.Bg.Over(below.Bg)
	return out
}
