package pattern

import (
	"fmt"
	"regexp"
)

// Compile translates a glob pattern and compiles the result.
func (c *realCompiler) Compile(pattern string) (*regexp.Regexp, error) {
	re, err := regexp.Compile(c.Translate(pattern))
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrInvalidRegex, pattern, err)
	}
	return re, nil
}
