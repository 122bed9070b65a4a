package fs

import (
	"os"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=interface.go -destination=mocks/fs.gen.go -package=mocks

// FS interface provides the host filesystem capabilities used to resolve globs.
type FS interface {
	// Exists checks if a file or directory exists at the given path.
	Exists(path string) (bool, error)

	// IsDir checks if the path is a directory, following symlinks.
	IsDir(path string) (bool, error)

	// ReadDir reads the contents of a directory.
	ReadDir(path string) ([]os.DirEntry, error)

	// EvalSymlinks returns the path with all symlinks resolved.
	EvalSymlinks(path string) (string, error)

	// Glob finds paths matching a non-recursive pattern, with tilde and brace expansion.
	Glob(pattern string) ([]string, error)

	// GetHomeDir returns the user's home directory path.
	GetHomeDir() (string, error)

	// IsNotExist checks if an error indicates that a file or directory doesn't exist.
	IsNotExist(err error) bool

	// ExpandPath expands ~ to user's home directory.
	ExpandPath(path string) (string, error)

	// NormalizePath converts a path to its clean absolute form.
	NormalizePath(path string) (string, error)

	// WriteFileAtomic writes data to a file through a temporary file and a rename,
	// creating parent directories as needed.
	WriteFileAtomic(filename string, data []byte, perm os.FileMode) error
}

type realFS struct {
	// No fields needed for basic file system operations
}

// NewFS creates a new FS instance.
func NewFS() FS {
	return &realFS{}
}
