package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Load returns the built-in configuration parsed from the embedded YAML.
// Falls back to the hardcoded defaults if the document cannot be parsed.
func Load() (Config, error) {
	cfg, err := Parse(defaultYAML)
	if err != nil {
		cfg = Default()
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Parse decodes a configuration document. Fields missing from data keep
// their default values.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: cannot parse: %w", err)
	}
	return cfg, nil
}
