// Package pattern provides glob to regular expression translation and error definitions.
package pattern

import "errors"

// Error definitions for pattern package.
var (
	// Regex construction errors.
	ErrInvalidRegex = errors.New("glob does not translate to a valid regular expression")

	// Pattern validation errors.
	ErrMalformedPattern = errors.New("malformed glob pattern")
)
