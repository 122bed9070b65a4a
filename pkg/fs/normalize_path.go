package fs

import (
	"fmt"
	"path/filepath"
)

// NormalizePath converts a path to its clean absolute form.
// Relative paths are resolved against the current working directory.
func (f *realFS) NormalizePath(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("%w: path cannot be empty", ErrPathResolution)
	}

	if filepath.IsAbs(path) {
		return filepath.Clean(path), nil
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("%w: failed to get absolute path for %s: %w", ErrPathResolution, path, err)
	}

	return absPath, nil
}
