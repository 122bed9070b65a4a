// Package globstar expands ** segments of glob patterns into concrete directories.
package globstar

import (
	"github.com/lerenn/globr/internal/base"
	"github.com/lerenn/globr/pkg/fs"
	"github.com/lerenn/globr/pkg/logger"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=expander.go -destination=mocks/expander.gen.go -package=mocks

// globstar is the token substituted with directories.
const globstar = "**"

// Expander interface provides globstar expansion capabilities.
type Expander interface {
	// Expand replaces every ** in pattern with each directory it can stand for.
	// The returned patterns contain no ** and are suitable for a
	// non-recursive glob; the union of their matches is the match set of
	// the original pattern. Order is unspecified.
	Expand(pattern string) []string
}

// ExpanderProvider builds an Expander from its parameters.
type ExpanderProvider func(params NewExpanderParams) Expander

// NewExpanderParams contains parameters for creating a new Expander instance.
type NewExpanderParams struct {
	FS     fs.FS
	Logger logger.Logger

	// MaxDepth bounds how many directory levels below the literal prefix
	// are enumerated. Zero means unlimited.
	MaxDepth int

	// FollowSymlinks enables descending into symlinked directories.
	FollowSymlinks bool

	Verbose bool
}

// realExpander provides the real implementation of the Expander interface.
type realExpander struct {
	*base.Base
	maxDepth       int
	followSymlinks bool
}

// NewExpander creates a new Expander instance.
func NewExpander(params NewExpanderParams) Expander {
	return &realExpander{
		Base: base.NewBase(base.NewBaseParams{
			FS:      params.FS,
			Logger:  params.Logger,
			Verbose: params.Verbose,
		}),
		maxDepth:       params.MaxDepth,
		followSymlinks: params.FollowSymlinks,
	}
}
