package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTree(t *testing.T, files ...string) string {
	t.Helper()
	root := t.TempDir()
	for _, name := range files {
		p := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte("# empty\n"), 0o644))
	}
	return root
}

func TestFindFilesByExtension_Sorted(t *testing.T) {
	root := writeTree(t, "b.boards", "a.boards", "sub/c.boards", "notes.txt")

	files, err := FindFilesByExtension(root, BoardsExtension)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(root, "a.boards"),
		filepath.Join(root, "b.boards"),
		filepath.Join(root, "sub", "c.boards"),
	}, files)
}

func TestFindFilesByExtension_EmptyExtensionPanics(t *testing.T) {
	assert.Panics(t, func() { _, _ = FindFilesByExtension(".", "") })
}

func TestCollectSources(t *testing.T) {
	root := writeTree(t, "kitchen/a.boards", "kitchen/b.boards", "single.txt")

	got, err := CollectSources([]string{
		filepath.Join(root, "single.txt"),
		filepath.Join(root, "kitchen"),
		filepath.Join(root, "kitchen", "a.boards"),
	}, BoardsExtension)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(root, "single.txt"),
		filepath.Join(root, "kitchen", "a.boards"),
		filepath.Join(root, "kitchen", "b.boards"),
	}, got)
}

func TestCollectSources_Errors(t *testing.T) {
	root := writeTree(t, "empty/readme.md")

	_, err := CollectSources([]string{filepath.Join(root, "missing.boards")}, BoardsExtension)
	assert.ErrorContains(t, err, "missing.boards")

	_, err = CollectSources([]string{filepath.Join(root, "empty")}, BoardsExtension)
	assert.ErrorContains(t, err, "no .boards files found")
}
