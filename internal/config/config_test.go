package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := ParseSlide(defaultSlideYAML)
	if err != nil {
		t.Fatalf("ParseSlide(embedded) failed: %v", err)
	}
	if cfg != DefaultSlideConfig() {
		t.Errorf("embedded YAML and DefaultSlideConfig differ:\n%+v\n%+v", cfg, DefaultSlideConfig())
	}
}

func TestLoadSlideCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "slide.yaml")
	data := []byte("obstacle:\n  origin: { x: 10, y: 20 }\nactor:\n  speed: 2.5\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadSlide(path)
	if err != nil {
		t.Fatalf("LoadSlide() failed: %v", err)
	}

	if cfg.Obstacle.Origin != (Vec{X: 10, Y: 20}) {
		t.Errorf("Obstacle.Origin = %+v", cfg.Obstacle.Origin)
	}
	if cfg.Actor.Speed != 2.5 {
		t.Errorf("Actor.Speed = %v, expected 2.5", cfg.Actor.Speed)
	}
	// Keys missing from the file keep their defaults.
	if cfg.Obstacle.Size != (Vec{X: 100, Y: 100}) {
		t.Errorf("Obstacle.Size = %+v, expected default", cfg.Obstacle.Size)
	}
}

func TestLoadSlideErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadSlide(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom file should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("actor: [not, a, map"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadSlide(bad); err == nil {
		t.Error("malformed YAML should fail")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("actor:\n  hitbox: { x: 40, y: 30 }\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadSlide(invalid); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("hitbox wider than sprite: err = %v, expected ErrInvalidConfig", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*SlideConfig)
	}{
		{"zero world", func(c *SlideConfig) { c.World.Width = 0 }},
		{"negative obstacle", func(c *SlideConfig) { c.Obstacle.Size.Y = -1 }},
		{"empty hitbox", func(c *SlideConfig) { c.Actor.Hitbox.X = 0 }},
		{"negative speed", func(c *SlideConfig) { c.Actor.Speed = -1 }},
		{"no hold", func(c *SlideConfig) { c.Input.HoldTicks = 0 }},
		{"negative duration", func(c *SlideConfig) { c.Run.DurationTicks = -5 }},
	}

	if err := DefaultSlideConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultSlideConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, expected ErrInvalidConfig", err)
			}
		})
	}
}

func TestApplySlidePreset(t *testing.T) {
	cfg := DefaultSlideConfig()
	ApplySlidePreset(&cfg, DifficultyHard)
	if !cfg.Difficulty.Enabled || cfg.Difficulty.InitialLevel != 0.7 {
		t.Errorf("hard preset: %+v", cfg.Difficulty)
	}
	if cfg.Run.DurationTicks != 1200 {
		t.Errorf("hard preset duration = %d, expected 1200", cfg.Run.DurationTicks)
	}

	cfg = DefaultSlideConfig()
	ApplySlidePreset(&cfg, DifficultyFixed)
	if cfg.Difficulty.Enabled {
		t.Error("fixed preset should disable progression")
	}

	cfg = DefaultSlideConfig()
	ApplySlidePreset(&cfg, "")
	if cfg != DefaultSlideConfig() {
		t.Error("empty preset should not change the config")
	}
}

func TestParsePreset(t *testing.T) {
	if p, err := ParsePreset("normal"); err != nil || p != DifficultyNormal {
		t.Errorf("ParsePreset(normal) = %q, %v", p, err)
	}
	if _, err := ParsePreset("insane"); err == nil {
		t.Error("unknown preset should fail")
	}
}

func TestDifficultyManager(t *testing.T) {
	dm := NewDifficultyManager(DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.5,
		Progression:  ProgressionConfig{Type: "time", MaxAt: 100},
		Scaling:      ScalingConfig{SpeedMultiplier: 1.0},
	})

	if got := dm.Level(0, 0); got != 0.5 {
		t.Errorf("Level at start = %v, expected 0.5", got)
	}
	if got := dm.Level(0, 50); got != 0.75 {
		t.Errorf("Level halfway = %v, expected 0.75", got)
	}
	if got := dm.Level(0, 1000); got != 1.0 {
		t.Errorf("Level past max = %v, expected 1.0", got)
	}
	if got := dm.Speed(4, 0, 1000); got != 8 {
		t.Errorf("Speed at max = %v, expected 8", got)
	}

	fixed := NewDifficultyManager(DifficultyConfig{Enabled: false, InitialLevel: 0.2})
	if fixed.IsEnabled() {
		t.Error("disabled manager reports enabled")
	}
	if got := fixed.Level(100, 100); got != 0.2 {
		t.Errorf("fixed Level = %v, expected 0.2", got)
	}
}
