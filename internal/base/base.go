// Package base provides common functionality for globr components.
package base

import (
	"fmt"

	"github.com/lerenn/globr/pkg/fs"
	"github.com/lerenn/globr/pkg/logger"
)

// Base provides common functionality for globr components.
type Base struct {
	FS      fs.FS
	Logger  logger.Logger
	verbose bool
}

// NewBaseParams contains parameters for creating a new Base instance.
type NewBaseParams struct {
	FS      fs.FS
	Logger  logger.Logger
	Verbose bool
}

// NewBase creates a new Base instance.
// A nil logger is replaced by a noop logger.
func NewBase(params NewBaseParams) *Base {
	log := params.Logger
	if log == nil {
		log = logger.NewNoopLogger()
	}

	return &Base{
		FS:      params.FS,
		Logger:  log,
		verbose: params.Verbose,
	}
}

// VerbosePrint prints a formatted message only in verbose mode.
func (b *Base) VerbosePrint(msg string, args ...interface{}) {
	if b.verbose {
		b.Logger.Logf(msg, args...)
	}
}

// IsVerbose returns whether verbose mode is enabled.
func (b *Base) IsVerbose() bool {
	return b.verbose
}

// PathExists checks whether a path exists on the filesystem.
func (b *Base) PathExists(path string) (bool, error) {
	exists, err := b.FS.Exists(path)
	if err != nil {
		return false, fmt.Errorf("%w: %s: %w", ErrFailedToCheckPathExists, path, err)
	}
	return exists, nil
}
