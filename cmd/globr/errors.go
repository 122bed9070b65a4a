package main

import "errors"

var (
	// ErrNoMatch is returned by match --all when a string does not match.
	ErrNoMatch = errors.New("strings did not match")
	// ErrConfigExists is returned by init when the configuration file is already there.
	ErrConfigExists = errors.New("configuration file already exists")
)
