//go:build unit

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{name: "default config", config: Config{}, wantErr: false},
		{name: "bounded depth", config: Config{MaxDepth: 8}, wantErr: false},
		{name: "negative depth", config: Config{MaxDepth: -1}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrMaxDepthNegative)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestFromYAML(t *testing.T) {
	config, err := FromYAML([]byte("max_depth: 4\nfollow_symlinks: true\nstrict_braces: true\n"))
	require.NoError(t, err)
	assert.Equal(t, Config{MaxDepth: 4, FollowSymlinks: true, StrictBraces: true}, config)

	_, err = FromYAML([]byte("max_depth: [1, 2]"))
	assert.ErrorIs(t, err, ErrConfigFileParse)

	_, err = FromYAML([]byte("max_depth: -3"))
	assert.ErrorIs(t, err, ErrMaxDepthNegative)
}

func TestRealManager_DefaultConfig(t *testing.T) {
	manager := NewManager(filepath.Join(t.TempDir(), "config.yaml"))

	assert.Equal(t, Config{}, manager.DefaultConfig())
}

func TestRealManager_GetConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("max_depth: 2\n"), 0644))

	manager := NewManager(configPath)
	config, err := manager.GetConfig()

	assert.NoError(t, err)
	assert.Equal(t, 2, config.MaxDepth)
	assert.False(t, config.FollowSymlinks)
}

func TestRealManager_GetConfig_FileNotFound(t *testing.T) {
	manager := NewManager(filepath.Join(t.TempDir(), "missing", "config.yaml"))

	_, err := manager.GetConfig()
	assert.ErrorIs(t, err, ErrConfigNotInitialized)
}

func TestRealManager_GetConfig_InvalidYAML(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "invalid-config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("max_depth: 1\ninvalid: yaml: structure: here"), 0644))

	manager := NewManager(configPath)
	_, err := manager.GetConfig()

	assert.ErrorIs(t, err, ErrConfigFileParse)
}

func TestRealManager_GetConfigWithFallback(t *testing.T) {
	// Missing file falls back to defaults
	manager := NewManager(filepath.Join(t.TempDir(), "config.yaml"))
	config, err := manager.GetConfigWithFallback()
	assert.NoError(t, err)
	assert.Equal(t, manager.DefaultConfig(), config)

	// A broken file is still reported
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("max_depth: -1\n"), 0644))
	_, err = NewManager(configPath).GetConfigWithFallback()
	assert.ErrorIs(t, err, ErrMaxDepthNegative)
}

func TestRealManager_SaveConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "nested", ".globr", "config.yaml")
	manager := NewManager(configPath)

	want := Config{MaxDepth: 3, FollowSymlinks: true}
	require.NoError(t, manager.SaveConfig(want))

	got, err := manager.GetConfig()
	assert.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, configPath, manager.GetConfigPath())

	// Invalid configurations are not written
	err = manager.SaveConfig(Config{MaxDepth: -1})
	assert.ErrorIs(t, err, ErrMaxDepthNegative)
}
