package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// LocalPath is the on-disk override picked up when no explicit path is given.
const LocalPath = "config.yaml"

// Default returns the embedded configuration.
func Default() (*Config, error) {
	return Parse(defaultYAML)
}

// Parse decodes YAML over the embedded defaults, so a file only needs the
// keys it changes, then validates the result.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal default: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Load reads the configuration. Search order: customPath, then ./config.yaml,
// then the embedded default. A custom path that cannot be read is an error;
// a missing local override is not.
func Load(customPath string) (*Config, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return nil, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return nil, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	data, err := os.ReadFile(LocalPath)
	switch {
	case err == nil:
		cfg, err := Parse(data)
		if err != nil {
			return nil, fmt.Errorf("config: %s: %w", LocalPath, err)
		}
		return cfg, nil
	case errors.Is(err, fs.ErrNotExist):
		return Default()
	default:
		return nil, fmt.Errorf("config: read %s: %w", LocalPath, err)
	}
}
