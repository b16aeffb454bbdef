// Package config provides YAML-based configuration loading and difficulty
// management for the slide sandbox.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned (wrapped) by Validate.
var ErrInvalidConfig = errors.New("config: invalid")

// Vec is a YAML-friendly 2D value. The game converts it to core.Vec2.
type Vec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// SlideConfig contains all configuration for the slide sandbox.
type SlideConfig struct {
	World      SlideWorld       `yaml:"world"`
	Obstacle   SlideObstacle    `yaml:"obstacle"`
	Actor      SlideActor       `yaml:"actor"`
	Input      SlideInput       `yaml:"input"`
	Run        SlideRun         `yaml:"run"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// SlideWorld defines the playfield in world units.
// The renderer scales it to fit the terminal.
type SlideWorld struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	// Clamp keeps the actor inside the world after collision resolution.
	Clamp bool `yaml:"clamp"`
}

// SlideObstacle is the single static obstacle.
type SlideObstacle struct {
	Origin Vec `yaml:"origin"`
	Size   Vec `yaml:"size"`
}

// SlideActor defines the moving actor's skin and speed.
type SlideActor struct {
	Start  Vec     `yaml:"start"`
	Sprite Vec     `yaml:"sprite"` // Visual cell size
	Hitbox Vec     `yaml:"hitbox"` // Collision box size, placed inside the sprite
	Speed  float64 `yaml:"speed"`  // World units per tick per axis
}

// SlideInput tunes how terminal key presses become held directions.
type SlideInput struct {
	// HoldTicks is how long one key press keeps a direction active.
	HoldTicks int `yaml:"hold_ticks"`
}

// SlideRun configures the timed variant.
type SlideRun struct {
	DurationTicks int `yaml:"duration_ticks"`
}

// Validate rejects configurations the sandbox cannot lay out.
// The collision core itself never validates; this only guards user files.
func (c SlideConfig) Validate() error {
	switch {
	case c.World.Width <= 0 || c.World.Height <= 0:
		return fmt.Errorf("%w: world size must be positive, got %gx%g", ErrInvalidConfig, c.World.Width, c.World.Height)
	case c.Obstacle.Size.X < 0 || c.Obstacle.Size.Y < 0:
		return fmt.Errorf("%w: obstacle size must not be negative", ErrInvalidConfig)
	case c.Actor.Hitbox.X <= 0 || c.Actor.Hitbox.Y <= 0:
		return fmt.Errorf("%w: actor hitbox must be positive", ErrInvalidConfig)
	case c.Actor.Hitbox.X > c.Actor.Sprite.X || c.Actor.Hitbox.Y > c.Actor.Sprite.Y:
		return fmt.Errorf("%w: actor hitbox %gx%g does not fit sprite %gx%g", ErrInvalidConfig,
			c.Actor.Hitbox.X, c.Actor.Hitbox.Y, c.Actor.Sprite.X, c.Actor.Sprite.Y)
	case c.Actor.Speed < 0:
		return fmt.Errorf("%w: actor speed must not be negative", ErrInvalidConfig)
	case c.Input.HoldTicks < 1:
		return fmt.Errorf("%w: input.hold_ticks must be at least 1", ErrInvalidConfig)
	case c.Run.DurationTicks < 0:
		return fmt.Errorf("%w: run.duration_ticks must not be negative", ErrInvalidConfig)
	}
	return nil
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to speed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a flag value to a preset. Empty means no preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}
