package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFile is the file name looked up in the config directories.
const ConfigFile = "bricks.yaml"

// LoadBricks loads the brick-breaker configuration.
// Search order: customPath -> ~/.brickbreaker/configs/bricks.yaml -> ./configs/bricks.yaml -> embedded default.
// Files are layered over the defaults, so a file only needs the keys it changes.
func LoadBricks(customPath string) (BricksConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return BricksConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := parseBricks(data)
		if err != nil {
			return BricksConfig{}, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(ConfigFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseBricks(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", ConfigFile)); err == nil {
		if cfg, err := parseBricks(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseBricks(defaultBricksYAML)
	if err != nil {
		return DefaultBricksConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parseBricks decodes YAML on top of the hard-coded defaults and validates the result.
func parseBricks(data []byte) (BricksConfig, error) {
	cfg := DefaultBricksConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return BricksConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return BricksConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".brickbreaker", "configs", filename)
}
