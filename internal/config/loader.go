package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadSlide loads the sandbox configuration.
// Search order: customPath -> ~/.arcade/configs/slide.yaml -> ./configs/slide.yaml -> embedded default.
// Files are decoded over the defaults, so a user file only needs the keys it changes.
func LoadSlide(customPath string) (SlideConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return SlideConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := ParseSlide(data)
		if err != nil {
			return SlideConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userCfgPath := userConfigPath("slide.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := ParseSlide(data); err == nil {
				return cfg, nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", "slide.yaml")); err == nil {
		if cfg, err := ParseSlide(data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := ParseSlide(defaultSlideYAML)
	if err != nil {
		return DefaultSlideConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// ParseSlide decodes YAML over the embedded defaults and validates the result.
func ParseSlide(data []byte) (SlideConfig, error) {
	cfg := DefaultSlideConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return SlideConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return SlideConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// ApplySlidePreset modifies the config based on a difficulty preset.
// An empty preset leaves the config untouched.
func ApplySlidePreset(cfg *SlideConfig, preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	default:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Longer runs on easy, shorter on hard
	switch preset {
	case DifficultyEasy:
		cfg.Run.DurationTicks = cfg.Run.DurationTicks * 3 / 2
	case DifficultyHard:
		cfg.Run.DurationTicks = cfg.Run.DurationTicks * 2 / 3
	}
}
