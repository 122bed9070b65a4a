//go:build integration

package resolver

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lerenn/globr/pkg/config"
	"github.com/lerenn/globr/pkg/dependencies"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// createTree creates root/a/b/c.txt under a fresh temporary directory and
// returns the symlink-free path of that directory.
func createTree(t *testing.T) string {
	t.Helper()

	dir, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, os.MkdirAll(filepath.Join(dir, "root", "a", "b"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "root", "a", "b", "c.txt"), []byte("c"), 0644))
	return dir
}

func newRealResolver(cfg config.Config) Resolver {
	return NewResolver(NewResolverParams{
		Dependencies: dependencies.New(),
		Config:       cfg,
	})
}

func TestResolver_Resolve_Integration_RecursiveFiles(t *testing.T) {
	dir := createTree(t)
	resolver := newRealResolver(config.Config{})

	paths, err := resolver.Resolve(filepath.Join(dir, "root") + "/**/*.txt")
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "root", "a", "b", "c.txt")}, paths)
}

func TestResolver_Resolve_Integration_TrailingGlobstar(t *testing.T) {
	dir := createTree(t)
	resolver := newRealResolver(config.Config{})

	root := filepath.Join(dir, "root")
	paths, err := resolver.Resolve(root + "/**")
	require.NoError(t, err)
	assert.Equal(t, []string{
		root,
		filepath.Join(root, "a"),
		filepath.Join(root, "a", "b"),
		filepath.Join(root, "a", "b", "c.txt"),
	}, paths)
}

func TestResolver_Resolve_Integration_Relative(t *testing.T) {
	dir := createTree(t)
	t.Chdir(dir)
	resolver := newRealResolver(config.Config{})

	paths, err := resolver.Resolve("root/**/*.txt")
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "root", "a", "b", "c.txt")}, paths)
}

func TestResolver_Resolve_Integration_Nonexistent(t *testing.T) {
	dir := createTree(t)
	resolver := newRealResolver(config.Config{})

	paths, err := resolver.Resolve(filepath.Join(dir, "nonexistent") + "/**/*.txt")
	require.NoError(t, err)
	assert.Empty(t, paths)
}

func TestResolver_Resolve_Integration_Idempotent(t *testing.T) {
	dir := createTree(t)
	resolver := newRealResolver(config.Config{})

	glob := filepath.Join(dir, "root") + "/**"
	first, err := resolver.Resolve(glob)
	require.NoError(t, err)
	second, err := resolver.Resolve(glob)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestResolver_Resolve_Integration_BracePrefix(t *testing.T) {
	dir := createTree(t)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "other", "x"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other", "x", "y.txt"), []byte("y"), 0644))
	resolver := newRealResolver(config.Config{})

	paths, err := resolver.Resolve(dir + "/{root,other,missing}/**/*.txt")
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "other", "x", "y.txt"),
		filepath.Join(dir, "root", "a", "b", "c.txt"),
	}, paths)
}

func TestResolver_Resolve_Integration_MaxDepth(t *testing.T) {
	dir := createTree(t)
	resolver := newRealResolver(config.Config{MaxDepth: 1})

	root := filepath.Join(dir, "root")
	paths, err := resolver.Resolve(root + "/**")
	require.NoError(t, err)
	assert.Equal(t, []string{root, filepath.Join(root, "a"), filepath.Join(root, "a", "b")}, paths)
}

func TestResolver_Resolve_Integration_Tilde(t *testing.T) {
	dir := createTree(t)
	t.Setenv("HOME", dir)
	resolver := newRealResolver(config.Config{})

	paths, err := resolver.Resolve("~/root/**/*.txt")
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "root", "a", "b", "c.txt")}, paths)
}

func TestResolver_Resolve_Integration_NoMeta(t *testing.T) {
	resolver := newRealResolver(config.Config{})

	paths, err := resolver.Resolve("does/not/exist.txt")
	require.NoError(t, err)
	assert.Equal(t, []string{"does/not/exist.txt"}, paths)
}
