package catalog_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kobzarvs/cjconf/internal/catalog"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, nil, 0o644))
}

func TestList_FiltersByExtension(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"zen.json", "dark.json", "notes.txt", "git.so", "fzf.dylib"} {
		touch(t, filepath.Join(dir, name))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested.json"), 0o755))

	themes, err := catalog.List(dir, catalog.ThemeExts...)
	require.NoError(t, err)
	assert.Equal(t, []string{"dark.json", "zen.json"}, themes)

	plugins, err := catalog.List(dir, catalog.PluginExts...)
	require.NoError(t, err)
	assert.Equal(t, []string{"fzf.dylib", "git.so"}, plugins)
}

func TestList_MissingDirectory(t *testing.T) {
	names, err := catalog.List(filepath.Join(t.TempDir(), "absent"), ".json")
	require.NoError(t, err)
	assert.Empty(t, names)
}
