package config

import "errors"

// Error definitions for config package.
var (
	// Configuration file errors.
	ErrConfigFileParse = errors.New("failed to parse config file")
	// Configuration validation errors.
	ErrMaxDepthNegative = errors.New("max_depth cannot be negative")
	// Configuration initialization errors.
	ErrConfigNotInitialized = errors.New("globr configuration not found. Run 'globr init' to initialize")
)
