package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the tuning file name looked up in the config directories.
const FileName = "levels.yaml"

// Load loads the battle tuning and validates it.
// Search order: customPath -> ~/.skybattle/configs/levels.yaml -> ./configs/levels.yaml -> embedded default
func Load(customPath string) (Config, error) {
	// Try custom path first
	if customPath != "" {
		return LoadFile(customPath)
	}

	// Try user config directory
	if userCfgPath := UserConfigPath(); userCfgPath != "" {
		if cfg, err := LoadFile(userCfgPath); err == nil {
			return cfg, nil
		}
	}

	// Try local configs directory
	if cfg, err := LoadFile(filepath.Join("configs", FileName)); err == nil {
		return cfg, nil
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultLevelsYAML)
	if err != nil {
		return DefaultConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// LoadFile reads, parses and validates a tuning file.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML on top of the defaults, so a file only needs the keys it changes.
func Parse(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// UserConfigPath returns the path to the user tuning file, or empty if home is unavailable.
func UserConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".skybattle", "configs", FileName)
}

// ApplyPreset modifies the tuning based on a difficulty preset.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.LevelOne.PlayerHealth += 2
		cfg.LevelTwo.PlayerHealth += 2
		cfg.LevelOne.SpawnProbability *= 0.75
		cfg.Enemy.FireRate *= 0.5
		cfg.Boss.FireRate *= 0.5
		cfg.Boss.ShieldProbability *= 0.5
	case DifficultyHard:
		cfg.LevelOne.PlayerHealth = max(cfg.LevelOne.PlayerHealth-2, 1)
		cfg.LevelTwo.PlayerHealth = max(cfg.LevelTwo.PlayerHealth-2, 1)
		cfg.LevelOne.SpawnProbability = min(cfg.LevelOne.SpawnProbability*1.5, 1)
		cfg.Enemy.FireRate = min(cfg.Enemy.FireRate*2, 1)
		cfg.Boss.FireRate = min(cfg.Boss.FireRate*2, 1)
	}
}
