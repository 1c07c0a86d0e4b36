package render

import "github.com/skius/teng/terminal"

// Renderer is the drawing surface handed to components. Depth resolves
// overlap: higher wins, later writes win ties.
type Renderer interface {
	// RenderPixel draws p at (x, y) with the given depth. Out-of-bounds
	// draws are ignored.
	RenderPixel(x, y int, p Pixel, depth int)

	// Bounds returns the surface dimensions in cells.
	Bounds() (width, height int)
}

// DisplayRenderer composes frames into a depth-buffered grid and flushes
// them as diffs against the previously flushed frame.
type DisplayRenderer struct {
	cur  *Grid
	prev *Grid
	sink terminal.FrameSink

	defaultFg terminal.RGB
	defaultBg terminal.RGB

	// forceRepaint makes the next Flush emit every cell. Armed initially and
	// after anything that invalidates the prev frame: resize, default color
	// change, explicit request.
	forceRepaint bool
}

var _ Renderer = (*DisplayRenderer)(nil)

// NewDisplayRenderer creates a renderer of the given size writing to sink.
// Defaults are white on black. The first Flush is a full repaint.
func NewDisplayRenderer(width, height int, sink terminal.FrameSink) *DisplayRenderer {
	return &DisplayRenderer{
		cur:          NewGrid(width, height),
		prev:         NewGrid(width, height),
		sink:         sink,
		defaultFg:    terminal.RGBWhite,
		defaultBg:    terminal.RGBBlack,
		forceRepaint: true,
	}
}

func (d *DisplayRenderer) RenderPixel(x, y int, p Pixel, depth int) {
	d.cur.Set(x, y, p, depth)
}

func (d *DisplayRenderer) Bounds() (int, int) {
	return d.cur.Width(), d.cur.Height()
}

func (d *DisplayRenderer) Width() int  { return d.cur.Width() }
func (d *DisplayRenderer) Height() int { return d.cur.Height() }

// ResetScreen clears the current frame. Call at the start of each frame
// before components draw.
func (d *DisplayRenderer) ResetScreen() {
	d.cur.Clear()
}

// SetDefaultFgColor changes the color unset foregrounds resolve to. Cached
// cells were resolved with the old default, so the next flush repaints fully.
func (d *DisplayRenderer) SetDefaultFgColor(c terminal.RGB) {
	if c == d.defaultFg {
		return
	}
	d.defaultFg = c
	d.forceRepaint = true
}

// SetDefaultBgColor changes the color unset backgrounds resolve to.
func (d *DisplayRenderer) SetDefaultBgColor(c terminal.RGB) {
	if c == d.defaultBg {
		return
	}
	d.defaultBg = c
	d.forceRepaint = true
}

func (d *DisplayRenderer) DefaultFgColor() terminal.RGB { return d.defaultFg }
func (d *DisplayRenderer) DefaultBgColor() terminal.RGB { return d.defaultBg }

// ForceFullRedraw makes the next Flush emit every cell.
func (d *DisplayRenderer) ForceFullRedraw() {
	d.forceRepaint = true
}

// ResizeDiscard resizes both frames, discarding their content. The next
// Flush repaints fully.
func (d *DisplayRenderer) ResizeDiscard(width, height int) {
	d.cur.Resize(width, height)
	d.prev.Resize(width, height)
	d.forceRepaint = true
}

// Flush diffs the current frame against the last flushed one, writes the
// instructions to the sink, and promotes the current frame to prev. Sink
// errors are fatal; the frame is not retried.
func (d *DisplayRenderer) Flush() error {
	ins := Diff(d.prev, d.cur, d.defaultFg, d.defaultBg, d.forceRepaint)
	if len(ins) > 0 {
		if err := d.sink.WriteFrame(d.cur.Width(), d.cur.Height(), ins); err != nil {
			return err
		}
	}
	d.cur, d.prev = d.prev, d.cur
	d.forceRepaint = false
	return nil
}
