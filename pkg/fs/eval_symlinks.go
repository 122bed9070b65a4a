package fs

import "path/filepath"

// EvalSymlinks returns the path with all symlinks resolved.
func (f *realFS) EvalSymlinks(path string) (string, error) {
	return filepath.EvalSymlinks(path)
}
