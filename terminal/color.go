package terminal

import (
	"os"
	"strings"
)

// ColorMode indicates terminal color capability
type ColorMode uint8

const (
	ColorMode256       ColorMode = iota // xterm-256 palette
	ColorModeTrueColor                  // 24-bit RGB
)

// RGB represents a 24-bit color
type RGB struct {
	R, G, B uint8
}

// Common colors
var (
	RGBBlack = RGB{0, 0, 0}
	RGBWhite = RGB{255, 255, 255}
)

// Color cube levels for the 6x6x6 palette (indices 16-231)
var cubeLevels = [6]uint8{0, 95, 135, 175, 215, 255}

// nearestCube maps a channel value to the nearest cube level index
func nearestCube(v uint8) int {
	best := 0
	bestDist := absInt(int(v) - int(cubeLevels[0]))
	for i := 1; i < 6; i++ {
		d := absInt(int(v) - int(cubeLevels[i]))
		if d < bestDist {
			bestDist = d
			best = i
		}
	}
	return best
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// RGBTo256 converts an RGB color to the nearest xterm-256 palette index.
// Compares the 6x6x6 color cube against the grayscale ramp (232-255) for
// near-gray inputs and picks the closer match.
func RGBTo256(c RGB) uint8 {
	cr, cg, cb := nearestCube(c.R), nearestCube(c.G), nearestCube(c.B)
	cubeDist := absInt(int(c.R)-int(cubeLevels[cr])) +
		absInt(int(c.G)-int(cubeLevels[cg])) +
		absInt(int(c.B)-int(cubeLevels[cb]))
	cubeIdx := uint8(16 + 36*cr + 6*cg + cb)

	// Grayscale ramp: index 232+i has level 8+10*i
	gray := (int(c.R) + int(c.G) + int(c.B)) / 3
	maxDiff := max(absInt(int(c.R)-gray), absInt(int(c.G)-gray), absInt(int(c.B)-gray))
	if maxDiff >= 10 {
		return cubeIdx
	}

	gi := (gray - 3) / 10
	if gi < 0 {
		gi = 0
	}
	if gi > 23 {
		gi = 23
	}
	level := 8 + 10*gi
	grayDist := absInt(int(c.R)-level) + absInt(int(c.G)-level) + absInt(int(c.B)-level)
	if grayDist < cubeDist {
		return uint8(232 + gi)
	}
	return cubeIdx
}

// DetectColorMode determines terminal color capability from the environment
func DetectColorMode() ColorMode {
	colorterm := os.Getenv("COLORTERM")
	if colorterm == "truecolor" || colorterm == "24bit" {
		return ColorModeTrueColor
	}

	// Terminals that support truecolor but don't always advertise it
	for _, v := range []string{"KITTY_WINDOW_ID", "KONSOLE_VERSION", "ITERM_SESSION_ID", "ALACRITTY_WINDOW_ID", "WEZTERM_PANE", "GHOSTTY_RESOURCES_DIR"} {
		if os.Getenv(v) != "" {
			return ColorModeTrueColor
		}
	}

	term := os.Getenv("TERM")
	if strings.Contains(term, "truecolor") || strings.Contains(term, "direct") {
		return ColorModeTrueColor
	}

	return ColorMode256
}
