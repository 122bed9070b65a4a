package cli

import (
	"io"

	"github.com/lerenn/globr/pkg/dependencies"
	"github.com/lerenn/globr/pkg/logger"
	"github.com/lerenn/globr/pkg/resolver"
)

// NewDependencies creates the dependency container used by the CLI commands.
// Diagnostics are written to stderr.
func NewDependencies(stderr io.Writer) (*dependencies.Dependencies, error) {
	deps := dependencies.New().
		WithLogger(logger.NewDefaultLogger(stderr, Quiet)).
		WithConfig(NewConfigManager())

	if err := deps.Validate(); err != nil {
		return nil, err
	}
	return deps, nil
}

// NewResolver creates a Resolver configured from the config file and flags.
func NewResolver(deps *dependencies.Dependencies) (resolver.Resolver, error) {
	cfg, err := LoadConfig(deps.Config)
	if err != nil {
		return nil, err
	}

	return resolver.NewResolver(resolver.NewResolverParams{
		Dependencies: deps,
		Config:       cfg,
		Verbose:      Verbose,
	}), nil
}
