package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the configuration for a variant.
// Search order: customPath -> ~/.breakout/configs/<variant>.yaml ->
// ./configs/<variant>.yaml -> embedded default -> hard-coded default.
// Files only need to name the fields they override.
func Load(variant, customPath string) (SessionConfig, error) {
	base, ok := DefaultConfig(variant)
	if !ok {
		return SessionConfig{}, fmt.Errorf("config: unknown variant %q", variant)
	}
	filename := variant + ".yaml"

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return base, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parse(data, base)
		if err != nil {
			return base, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return base, fmt.Errorf("config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		if cfg, ok := tryFile(userCfgPath, base); ok {
			return cfg, nil
		}
	}

	// Try local configs directory
	if cfg, ok := tryFile(filepath.Join("configs", filename), base); ok {
		return cfg, nil
	}

	// Use embedded default YAML
	cfg, err := parse(GetDefaultYAML(variant), base)
	if err != nil {
		return base, nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// tryFile loads an optional config file. Missing, unparsable or invalid
// files are skipped so the next source in the search order is used.
func tryFile(path string, base SessionConfig) (SessionConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, false
	}
	cfg, err := parse(data, base)
	if err != nil || cfg.Validate() != nil {
		return base, false
	}
	return cfg, true
}

// parse decodes YAML on top of base so omitted fields keep their defaults.
func parse(data []byte, base SessionConfig) (SessionConfig, error) {
	cfg := base
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return base, err
	}
	return cfg, nil
}

// Marshal renders a config as YAML.
func Marshal(cfg SessionConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: cannot encode: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".breakout", "configs", filename)
}
