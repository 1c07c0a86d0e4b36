// Benchmark drives the full render pipeline as fast as it will go and
// reports frame and flush timing. The xor pattern touches every cell every
// frame (worst case for the differ); static touches one (best case).
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/pflag"

	"github.com/skius/teng/render"
	"github.com/skius/teng/terminal"
)

var (
	duration = pflag.Duration("duration", 10*time.Second, "benchmark duration")
	pattern  = pflag.String("pattern", "xor", "pattern: xor|static")
)

func main() {
	pflag.Parse()

	term := terminal.New()
	if err := term.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "benchmark: %v\n", err)
		os.Exit(1)
	}
	defer term.Fini()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		term.Fini()
		os.Exit(0)
	}()

	w, h := term.Size()
	r := render.NewDisplayRenderer(w, h, term)

	var frames int64
	var flushTotal time.Duration
	start := time.Now()

	for time.Since(start) < *duration {
		r.ResetScreen()

		// Keep generation trivial so the measurement is pipeline throughput
		if *pattern == "xor" {
			offset := int(frames)
			for y := 0; y < h; y++ {
				for x := 0; x < w; x++ {
					val := x + y + offset
					p := render.NewPixel('█').WithFg(uint8(val), uint8(val>>1), uint8(255-val))
					r.RenderPixel(x, y, p, 0)
				}
			}
		} else {
			p := render.NewPixel('█').WithFg(uint8(frames), 0, 0)
			r.RenderPixel(0, 0, p, 0)
		}

		t0 := time.Now()
		if err := r.Flush(); err != nil {
			term.Fini()
			fmt.Fprintf(os.Stderr, "benchmark: flush: %v\n", err)
			os.Exit(1)
		}
		flushTotal += time.Since(t0)
		frames++
	}

	elapsed := time.Since(start)
	term.Fini()

	fmt.Printf("pattern:     %s\n", *pattern)
	fmt.Printf("size:        %dx%d\n", w, h)
	fmt.Printf("frames:      %d\n", frames)
	fmt.Printf("fps:         %.1f\n", float64(frames)/elapsed.Seconds())
	if frames > 0 {
		fmt.Printf("avg flush:   %v\n", flushTotal/time.Duration(frames))
	}
}
