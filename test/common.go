//go:build e2e

package test

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lerenn/globr/pkg/config"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// TestSetup holds the test environment setup
type TestSetup struct {
	TempDir    string
	ConfigPath string
	TreePath   string
	BinaryPath string
}

// setupTestEnvironment creates a temporary test environment with a built
// globr binary, a configuration file and the following tree:
//
//	tree/
//	  top.txt
//	  a/
//	    b/
//	      c.txt
//	    d.go
//	  e/
func setupTestEnvironment(t *testing.T, cfg config.Config) *TestSetup {
	t.Helper()

	tempDir, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)

	treePath := filepath.Join(tempDir, "tree")
	require.NoError(t, os.MkdirAll(filepath.Join(treePath, "a", "b"), 0755))
	require.NoError(t, os.MkdirAll(filepath.Join(treePath, "e"), 0755))
	for _, file := range []string{"top.txt", "a/b/c.txt", "a/d.go"} {
		require.NoError(t, os.WriteFile(filepath.Join(treePath, file), []byte(file), 0644))
	}

	configPath := filepath.Join(tempDir, "config.yaml")
	configData, err := yaml.Marshal(cfg)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(configPath, configData, 0644))

	return &TestSetup{
		TempDir:    tempDir,
		ConfigPath: configPath,
		TreePath:   treePath,
		BinaryPath: buildBinary(t, tempDir),
	}
}

// buildBinary builds cmd/globr into dir.
func buildBinary(t *testing.T, dir string) string {
	t.Helper()

	binaryPath := filepath.Join(dir, "globr")

	// Go up one level from the test directory to the project root
	currentDir, err := os.Getwd()
	require.NoError(t, err)
	projectRoot := filepath.Dir(currentDir)

	buildCmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/globr")
	buildCmd.Dir = projectRoot
	buildOutput, err := buildCmd.CombinedOutput()
	if err != nil {
		t.Logf("Build failed with output: %s", string(buildOutput))
		require.NoError(t, err, "Failed to build globr binary")
	}

	return binaryPath
}

// runGlobr runs the binary from the tree directory with the setup's
// configuration and returns stdout and stderr.
func runGlobr(t *testing.T, setup *TestSetup, args ...string) (string, string, error) {
	t.Helper()

	cmd := exec.Command(setup.BinaryPath, append([]string{"--config", setup.ConfigPath}, args...)...)
	cmd.Dir = setup.TreePath
	cmd.Env = append(os.Environ(), "HOME="+setup.TempDir)

	var stdout, stderr strings.Builder
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

// lines splits command output into non-empty lines.
func lines(output string) []string {
	var result []string
	for _, line := range strings.Split(output, "\n") {
		if line != "" {
			result = append(result, line)
		}
	}
	return result
}

// runWithoutConfigFlag prepares the binary to run with the default
// configuration path under the test home directory.
func runWithoutConfigFlag(setup *TestSetup, args ...string) *exec.Cmd {
	cmd := exec.Command(setup.BinaryPath, args...)
	cmd.Dir = setup.TreePath
	cmd.Env = append(os.Environ(), "HOME="+setup.TempDir)
	return cmd
}
