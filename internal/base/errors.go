// Package base provides common functionality for globr components.
package base

import "errors"

// Error definitions for base package.
var (
	// Filesystem errors.
	ErrFailedToCheckPathExists = errors.New("failed to check if path exists")
)
