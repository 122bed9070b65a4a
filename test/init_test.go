//go:build e2e

package test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lerenn/globr/configs"
	"github.com/lerenn/globr/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit(t *testing.T) {
	setup := setupTestEnvironment(t, config.Config{})
	require.NoError(t, os.Remove(setup.ConfigPath))

	_, _, err := runGlobr(t, setup, "init")
	require.NoError(t, err)

	content, err := os.ReadFile(setup.ConfigPath)
	require.NoError(t, err)
	assert.Equal(t, configs.DefaultConfigYAML, content)

	_, stderr, err := runGlobr(t, setup, "init")
	assert.Error(t, err)
	assert.Contains(t, stderr, "already exists")

	_, _, err = runGlobr(t, setup, "init", "--force")
	assert.NoError(t, err)
}

func TestInitDefaultPath(t *testing.T) {
	setup := setupTestEnvironment(t, config.Config{})

	cmd := runWithoutConfigFlag(setup, "init")
	require.NoError(t, cmd.Run())

	_, err := os.Stat(filepath.Join(setup.TempDir, ".globr", "config.yaml"))
	assert.NoError(t, err)
}
