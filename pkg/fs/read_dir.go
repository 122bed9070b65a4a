package fs

import "os"

// ReadDir lists a directory, sorted by name.
// Entry types come from the directory itself, so symlinks report
// fs.ModeSymlink rather than their target's type.
func (f *realFS) ReadDir(path string) ([]os.DirEntry, error) {
	return os.ReadDir(path)
}
