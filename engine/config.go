package engine

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/skius/teng/terminal"
)

// Config is the engine configuration loadable from YAML.
type Config struct {
	// TargetFPS caps the frame rate. Zero or negative runs unthrottled.
	TargetFPS float64 `yaml:"target_fps"`

	// ColorMode is "auto", "256", or "truecolor".
	ColorMode string `yaml:"color_mode"`

	// Mouse is "none", "click", "drag", or "motion". Each level includes
	// the ones before it.
	Mouse string `yaml:"mouse"`

	// Backend is "ansi" (raw escape sequences) or "tcell".
	Backend string `yaml:"backend"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() Config {
	return Config{
		TargetFPS: DefaultTargetFPS,
		ColorMode: "auto",
		Mouse:     "none",
		Backend:   "ansi",
	}
}

// LoadConfig reads a YAML config file. A missing file yields defaults; a
// malformed one is an error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks enum fields.
func (c Config) Validate() error {
	switch c.ColorMode {
	case "auto", "256", "truecolor":
	default:
		return fmt.Errorf("config: unknown color_mode %q", c.ColorMode)
	}
	switch c.Mouse {
	case "none", "click", "drag", "motion":
	default:
		return fmt.Errorf("config: unknown mouse mode %q", c.Mouse)
	}
	switch c.Backend {
	case "ansi", "tcell":
	default:
		return fmt.Errorf("config: unknown backend %q", c.Backend)
	}
	return nil
}

// NewTerminal builds the terminal the config describes.
func (c Config) NewTerminal() (terminal.Terminal, error) {
	if c.Backend == "tcell" {
		return terminal.NewTcell()
	}
	switch c.ColorMode {
	case "256":
		return terminal.New(terminal.ColorMode256), nil
	case "truecolor":
		return terminal.New(terminal.ColorModeTrueColor), nil
	default:
		return terminal.New(), nil
	}
}

// MouseMode translates the config's mouse level.
func (c Config) MouseMode() terminal.MouseMode {
	switch c.Mouse {
	case "click":
		return terminal.MouseModeClick
	case "drag":
		return terminal.MouseModeClick | terminal.MouseModeDrag
	case "motion":
		return terminal.MouseModeClick | terminal.MouseModeDrag | terminal.MouseModeMotion
	default:
		return terminal.MouseModeNone
	}
}
