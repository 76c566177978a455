package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadPentris loads the game configuration.
// Search order: customPath -> ~/.pentris/configs/pentris.yaml -> ./configs/pentris.yaml -> embedded default
//
// Files are decoded on top of the defaults, so a file only needs the keys it changes.
func LoadPentris(customPath string) (PentrisConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return PentrisConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parsePentris(data)
		if err != nil {
			return PentrisConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("pentris.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parsePentris(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "pentris.yaml")); err == nil {
		if cfg, err := parsePentris(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parsePentris(defaultPentrisYAML)
	if err != nil {
		return DefaultPentrisConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parsePentris decodes YAML over the hard-coded defaults and validates the result.
func parsePentris(data []byte) (PentrisConfig, error) {
	cfg := DefaultPentrisConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return PentrisConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return PentrisConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".pentris", "configs", filename)
}
