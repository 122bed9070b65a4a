package pattern

import "regexp"

const (
	// globstarRegex matches zero or more complete path segments.
	globstarRegex = `((?:[^/]*(?:/|$))*)`

	// segmentRegex matches within a single path segment.
	segmentRegex = `([^/]*)`
)

// Compiler translates glob patterns into regular expressions for
// matching strings without touching the filesystem.
type Compiler interface {
	// Translate returns the regular expression source for a glob pattern.
	Translate(pattern string) string

	// Compile translates a glob pattern and compiles the result.
	Compile(pattern string) (*regexp.Regexp, error)

	// Match reports whether s matches the glob pattern.
	Match(pattern, s string) (bool, error)

	// Validate checks that brace groups in the pattern are balanced.
	Validate(pattern string) error
}

type realCompiler struct{}

// NewCompiler creates a new Compiler instance.
func NewCompiler() Compiler {
	return &realCompiler{}
}
