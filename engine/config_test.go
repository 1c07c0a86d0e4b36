package engine

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/skius/teng/terminal"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "engine.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, "target_fps: 30\ncolor_mode: \"256\"\nmouse: drag\nbackend: ansi\n")
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.TargetFPS != 30 {
		t.Errorf("TargetFPS = %v, want 30", cfg.TargetFPS)
	}
	if cfg.ColorMode != "256" {
		t.Errorf("ColorMode = %q", cfg.ColorMode)
	}
	if got := cfg.MouseMode(); got != terminal.MouseModeClick|terminal.MouseModeDrag {
		t.Errorf("MouseMode = %v", got)
	}
}

func TestLoadConfigMissingFileYieldsDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("got %+v, want defaults", cfg)
	}
}

func TestLoadConfigRejectsBadEnums(t *testing.T) {
	cases := []string{
		"color_mode: 24bit\n",
		"mouse: always\n",
		"backend: curses\n",
	}
	for _, c := range cases {
		path := writeConfig(t, c)
		if _, err := LoadConfig(path); err == nil {
			t.Errorf("config %q accepted", c)
		}
	}
}

func TestLoadConfigRejectsMalformedYAML(t *testing.T) {
	path := writeConfig(t, "target_fps: [not a number\n")
	if _, err := LoadConfig(path); err == nil {
		t.Error("malformed yaml accepted")
	}
}
