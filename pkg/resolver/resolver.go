// Package resolver resolves glob patterns against the filesystem.
package resolver

import (
	"github.com/lerenn/globr/internal/base"
	"github.com/lerenn/globr/pkg/config"
	"github.com/lerenn/globr/pkg/dependencies"
	"github.com/lerenn/globr/pkg/globstar"
	"github.com/lerenn/globr/pkg/pattern"
)

// Resolver interface provides glob resolution capabilities.
type Resolver interface {
	// Resolve returns the sorted, deduplicated absolute paths matching pattern.
	// A pattern without glob metacharacters is returned unchanged.
	// No match is not an error.
	Resolve(pattern string) ([]string, error)
}

// NewResolverParams contains parameters for creating a new Resolver instance.
type NewResolverParams struct {
	Dependencies *dependencies.Dependencies
	Config       config.Config
	Verbose      bool
}

// realResolver provides the real implementation of the Resolver interface.
type realResolver struct {
	*base.Base
	compiler pattern.Compiler
	expander globstar.Expander
	strict   bool
}

// NewResolver creates a new Resolver instance.
func NewResolver(params NewResolverParams) Resolver {
	deps := params.Dependencies

	return &realResolver{
		Base: base.NewBase(base.NewBaseParams{
			FS:      deps.FS,
			Logger:  deps.Logger,
			Verbose: params.Verbose,
		}),
		compiler: deps.Compiler,
		expander: deps.ExpanderProvider(globstar.NewExpanderParams{
			FS:             deps.FS,
			Logger:         deps.Logger,
			MaxDepth:       params.Config.MaxDepth,
			FollowSymlinks: params.Config.FollowSymlinks,
			Verbose:        params.Verbose,
		}),
		strict: params.Config.StrictBraces,
	}
}
