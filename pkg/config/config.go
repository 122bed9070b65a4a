package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration.
type Config struct {
	// MaxDepth bounds how deep a globstar is expanded below its literal prefix.
	// Zero means unlimited.
	MaxDepth int `yaml:"max_depth"`

	// FollowSymlinks lets globstar expansion descend into symlinked directories.
	FollowSymlinks bool `yaml:"follow_symlinks"`

	// StrictBraces rejects patterns with unbalanced brace groups.
	StrictBraces bool `yaml:"strict_braces"`
}

// Validate validates the configuration values.
func (c Config) Validate() error {
	if c.MaxDepth < 0 {
		return fmt.Errorf("%w: got %d", ErrMaxDepthNegative, c.MaxDepth)
	}
	return nil
}

// FromYAML parses and validates a configuration document.
func FromYAML(data []byte) (Config, error) {
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrConfigFileParse, err)
	}

	if err := config.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}
