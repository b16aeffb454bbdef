package config

import (
	_ "embed"
)

//go:embed defaults/slide.yaml
var defaultSlideYAML []byte

// DefaultSlideConfig returns the default sandbox configuration: a 640x480
// arena, a 100x100 obstacle and a 24x30 hitbox inside a 32x32 sprite
// moving 4 units per tick.
func DefaultSlideConfig() SlideConfig {
	return SlideConfig{
		World: SlideWorld{
			Width:  640,
			Height: 480,
			Clamp:  true,
		},
		Obstacle: SlideObstacle{
			Origin: Vec{X: 300, Y: 200},
			Size:   Vec{X: 100, Y: 100},
		},
		Actor: SlideActor{
			Start:  Vec{X: 0, Y: 0},
			Sprite: Vec{X: 32, Y: 32},
			Hitbox: Vec{X: 24, Y: 30},
			Speed:  4,
		},
		Input: SlideInput{
			HoldTicks: 8,
		},
		Run: SlideRun{
			DurationTicks: 1800, // 30 seconds at 60fps
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "time",
				MaxAt: 1800,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.0,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "slide", "slide_run":
		return defaultSlideYAML
	default:
		return nil
	}
}
