// Package render provides the frame composition pipeline: a depth-buffered
// pixel grid that resolves overlapping draws, and a differ that turns the
// change between two composed frames into a minimal instruction stream for a
// terminal.FrameSink.
//
// Drawing happens through the Renderer interface. DisplayRenderer is the
// production implementation: components paint pixels with depths into the
// current grid, Flush diffs against the previously flushed grid and hands the
// instructions to the sink.
package render
