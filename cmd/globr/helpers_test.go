package main

import (
	"bytes"
	"path/filepath"
	"testing"
)

// execute runs the root command with a config file inside a temporary
// directory and returns what was written to stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	configPath := filepath.Join(t.TempDir(), "config.yaml")
	return executeWithConfig(t, configPath, args...)
}

func executeWithConfig(t *testing.T, configPath string, args ...string) (string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	rootCmd := newRootCmd()
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(append([]string{"--config", configPath}, args...))

	err := rootCmd.Execute()
	return stdout.String(), err
}
