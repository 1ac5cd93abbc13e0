package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindFilesByExtension(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "sub")
	require.NoError(t, os.MkdirAll(sub, 0o755))
	for _, name := range []string{"a.hcl", "b.txt", "sub/c.hcl"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o644))
	}

	files, err := FindFilesByExtension([]string{dir}, ".hcl")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{
		filepath.Join(dir, "a.hcl"),
		filepath.Join(dir, "sub", "c.hcl"),
	}, files)
}

func TestFindFilesByExtensionMixedPaths(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "a.hcl")
	require.NoError(t, os.WriteFile(file, nil, 0o644))

	// A direct file path, its containing directory, and a missing path: the
	// file is reported once and the missing path is skipped.
	files, err := FindFilesByExtension([]string{file, dir, filepath.Join(dir, "nope")}, ".hcl")
	require.NoError(t, err)
	assert.Equal(t, []string{file}, files)
}

func TestFindFilesByExtensionIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), nil, 0o644))

	files, err := FindFilesByExtension([]string{filepath.Join(dir, "a.txt"), dir}, ".hcl")
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestFindFilesByExtensionEmptyExtensionPanics(t *testing.T) {
	assert.Panics(t, func() { _, _ = FindFilesByExtension(nil, "") })
}
