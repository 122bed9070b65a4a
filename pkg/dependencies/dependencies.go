// Package dependencies provides a centralized dependency container for globr.
// Related collaborators are grouped together and configured through a
// fluent API.
package dependencies

import (
	"errors"

	"github.com/lerenn/globr/pkg/config"
	"github.com/lerenn/globr/pkg/fs"
	"github.com/lerenn/globr/pkg/globstar"
	"github.com/lerenn/globr/pkg/logger"
	"github.com/lerenn/globr/pkg/pattern"
)

// Validation errors for missing dependencies.
var (
	ErrFSMissing               = errors.New("fs dependency is required but not set")
	ErrLoggerMissing           = errors.New("logger dependency is required but not set")
	ErrCompilerMissing         = errors.New("compiler dependency is required but not set")
	ErrConfigMissing           = errors.New("config dependency is required but not set")
	ErrExpanderProviderMissing = errors.New("expander provider dependency is required but not set")
)

// Dependencies holds shared dependencies across the application.
type Dependencies struct {
	FS               fs.FS
	Logger           logger.Logger
	Compiler         pattern.Compiler
	Config           config.Manager
	ExpanderProvider globstar.ExpanderProvider
}

// New creates a new Dependencies instance with sensible defaults.
func New() *Dependencies {
	return &Dependencies{
		FS:               fs.NewFS(),
		Logger:           logger.NewNoopLogger(),
		Compiler:         pattern.NewCompiler(),
		ExpanderProvider: globstar.NewExpander,
		// Note: Config is intentionally left nil as it depends on the
		// config file location, set via WithConfig
	}
}

// WithFS sets the filesystem and returns the instance for chaining.
func (d *Dependencies) WithFS(fs fs.FS) *Dependencies {
	d.FS = fs
	return d
}

// WithLogger sets the logger and returns the instance for chaining.
func (d *Dependencies) WithLogger(logger logger.Logger) *Dependencies {
	d.Logger = logger
	return d
}

// WithCompiler sets the pattern compiler and returns the instance for chaining.
func (d *Dependencies) WithCompiler(compiler pattern.Compiler) *Dependencies {
	d.Compiler = compiler
	return d
}

// WithConfig sets the config manager and returns the instance for chaining.
func (d *Dependencies) WithConfig(cfg config.Manager) *Dependencies {
	d.Config = cfg
	return d
}

// WithExpanderProvider sets the globstar expander provider and returns the instance for chaining.
func (d *Dependencies) WithExpanderProvider(ep globstar.ExpanderProvider) *Dependencies {
	d.ExpanderProvider = ep
	return d
}

// dependencyCheck represents a dependency validation check.
type dependencyCheck struct {
	missing bool
	err     error
}

// Validate checks that all required dependencies are set and returns an error if any are missing.
func (d *Dependencies) Validate() error {
	checks := []dependencyCheck{
		{d.FS == nil, ErrFSMissing},
		{d.Logger == nil, ErrLoggerMissing},
		{d.Compiler == nil, ErrCompilerMissing},
		{d.Config == nil, ErrConfigMissing},
		{d.ExpanderProvider == nil, ErrExpanderProviderMissing},
	}

	for _, check := range checks {
		if check.missing {
			return check.err
		}
	}
	return nil
}
