//go:build unit

package globstar

import "io/fs"

// fakeEntry is a directory entry returned by mocked ReadDir calls.
type fakeEntry struct {
	name string
	mode fs.FileMode
}

func (f fakeEntry) Name() string               { return f.name }
func (f fakeEntry) IsDir() bool                { return f.mode.IsDir() }
func (f fakeEntry) Type() fs.FileMode          { return f.mode.Type() }
func (f fakeEntry) Info() (fs.FileInfo, error) { return nil, fs.ErrInvalid }

func dirEntry(name string) fs.DirEntry     { return fakeEntry{name: name, mode: fs.ModeDir} }
func fileEntry(name string) fs.DirEntry    { return fakeEntry{name: name} }
func symlinkEntry(name string) fs.DirEntry { return fakeEntry{name: name, mode: fs.ModeSymlink} }
