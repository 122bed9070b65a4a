// Package cli provides common configuration and utility functions for the globr CLI.
package cli

import (
	"path/filepath"

	"github.com/lerenn/globr/pkg/config"
	"github.com/lerenn/globr/pkg/fs"
)

var (
	// Quiet suppresses all output except errors.
	Quiet bool
	// Verbose enables verbose output.
	Verbose bool
	// ConfigPath specifies a custom config file path.
	ConfigPath string
	// Strict rejects patterns with unbalanced brace groups.
	Strict bool
)

// GetConfigPath returns the config file path used by the CLI.
// A leading ~ in a custom path is expanded.
func GetConfigPath() string {
	fsInstance := fs.NewFS()

	if ConfigPath != "" {
		path, err := fsInstance.ExpandPath(ConfigPath)
		if err != nil {
			return ConfigPath
		}
		return path
	}

	homeDir, err := fsInstance.GetHomeDir()
	if err != nil {
		homeDir = "."
	}
	return filepath.Join(homeDir, ".globr", "config.yaml")
}

// NewConfigManager creates a new Manager with the appropriate config path.
func NewConfigManager() config.Manager {
	return config.NewManager(GetConfigPath())
}

// LoadConfig loads the configuration, falling back to defaults when no file
// was initialized. The --strict flag overrides the file.
func LoadConfig(manager config.Manager) (config.Config, error) {
	cfg, err := manager.GetConfigWithFallback()
	if err != nil {
		return config.Config{}, err
	}

	if Strict {
		cfg.StrictBraces = true
	}
	return cfg, nil
}
