package fs

import (
	"fmt"

	"github.com/bmatcuk/doublestar/v4"
)

// Glob finds paths matching the pattern.
// A leading ~ is expanded and {a,b} groups are honored. The pattern is
// expected to be free of ** segments; callers expand those beforehand.
func (f *realFS) Glob(pattern string) ([]string, error) {
	expanded, err := f.ExpandPath(pattern)
	if err != nil {
		return nil, err
	}

	matches, err := doublestar.FilepathGlob(expanded)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrGlobPattern, pattern, err)
	}

	return matches, nil
}
