package fs

import (
	"errors"
	"io/fs"
	"os"
)

// Exists checks if a file or directory exists at the given path.
// A missing path is not an error; other stat failures are.
func (f *realFS) Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	switch {
	case err == nil:
		return true, nil
	case f.IsNotExist(err):
		return false, nil
	default:
		return false, err
	}
}

// IsDir checks if the path is a directory, following symlinks.
func (f *realFS) IsDir(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return false, err
	}
	return info.IsDir(), nil
}

// IsNotExist checks if an error, possibly wrapped, indicates that a file or
// directory doesn't exist.
func (f *realFS) IsNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}
