package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadEmbeddedDefault(t *testing.T) {
	// Without a custom path (and no user config in a temp HOME) the loader
	// falls back to the embedded YAML, which mirrors Default().
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg != Default() {
		t.Errorf("embedded config = %+v, want Default()", cfg)
	}
}

func TestLoadCustomPath(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "custom.yaml")

	yaml := `
world:
  width: 400
  height: 500
  floor_height: 50
physics:
  gravity: 0.7
presets:
  hard:
    speed: 5.0
`
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.World.Width != 400 || cfg.World.Height != 500 {
		t.Errorf("world = %+v, want 400x500", cfg.World)
	}
	if cfg.Physics.Gravity != 0.7 {
		t.Errorf("gravity = %v, want 0.7", cfg.Physics.Gravity)
	}
	if cfg.Presets.Hard.Speed != 5.0 {
		t.Errorf("hard speed = %v, want 5.0", cfg.Presets.Hard.Speed)
	}
}

func TestLoadMissingCustomPathFails(t *testing.T) {
	if _, err := Load("/nonexistent/config.yaml"); err == nil {
		t.Error("Load() with a missing custom path should fail")
	}
}

func TestLoadMalformedCustomPathFails(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "broken.yaml")
	if err := os.WriteFile(path, []byte("world: [not a map"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load() with malformed YAML should fail")
	}
}

func TestFloorY(t *testing.T) {
	w := WorldConfig{Width: 480, Height: 640, FloorHeight: 60}
	if got := w.FloorY(); got != 580 {
		t.Errorf("FloorY() = %v, want 580", got)
	}
}

func TestDefaultSanity(t *testing.T) {
	cfg := Default()

	if cfg.Physics.Impulse >= 0 {
		t.Error("impulse must be negative (upward)")
	}
	if cfg.Physics.Gravity <= 0 || cfg.Physics.MaxFallSpeed <= 0 {
		t.Error("gravity and terminal velocity must be positive")
	}
	if cfg.World.FloorY() <= 0 {
		t.Error("floor must sit below the ceiling")
	}

	for _, p := range []PresetParams{cfg.Presets.Easy, cfg.Presets.Medium, cfg.Presets.Hard} {
		if p.MinGap > p.MaxGap {
			t.Errorf("preset gap range inverted: %+v", p)
		}
		if p.Speed <= 0 || p.Spacing <= 0 {
			t.Errorf("preset has non-positive motion params: %+v", p)
		}
	}
}
