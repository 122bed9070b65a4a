package resolver

import "errors"

// Error definitions for resolver package.
var (
	// Path errors.
	ErrTildeExpansion = errors.New("failed to expand home directory")
	ErrNormalization  = errors.New("failed to normalize matched path")
)
