package output

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrite_CreatesFileWithParentDirs(t *testing.T) {
	root := t.TempDir()

	res, err := Write(root, "a/b/c.md", "content", Options{})
	require.NoError(t, err)
	assert.Equal(t, StatusCreated, res.Status)
	assert.Equal(t, "a/b/c.md", res.Path)

	data, err := os.ReadFile(filepath.Join(root, "a", "b", "c.md"))
	require.NoError(t, err)
	assert.Equal(t, "content", string(data))
}

func TestWrite_DryRunNeverMutates(t *testing.T) {
	root := t.TempDir()

	// Non-existing target
	res, err := Write(root, "new.md", "content", Options{DryRun: true})
	require.NoError(t, err)
	assert.Equal(t, StatusWouldCreate, res.Status)
	assert.NoFileExists(t, filepath.Join(root, "new.md"))

	// Existing target with overwrite
	require.NoError(t, os.WriteFile(filepath.Join(root, "old.md"), []byte("original"), 0o644))
	res, err = Write(root, "old.md", "replacement", Options{DryRun: true, Overwrite: true})
	require.NoError(t, err)
	assert.Equal(t, StatusWouldOverwrite, res.Status)

	data, err := os.ReadFile(filepath.Join(root, "old.md"))
	require.NoError(t, err)
	assert.Equal(t, "original", string(data))
}

func TestWrite_SkipsExistingWithoutOverwrite(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "f.md"), []byte("original"), 0o644))

	res, err := Write(root, "f.md", "replacement", Options{})
	require.NoError(t, err)
	assert.Equal(t, StatusSkipped, res.Status)

	data, err := os.ReadFile(filepath.Join(root, "f.md"))
	require.NoError(t, err)
	assert.Equal(t, "original", string(data), "skip must leave content unchanged")
}

func TestWrite_OverwritesExisting(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "f.md"), []byte("original"), 0o644))

	res, err := Write(root, "f.md", "replacement", Options{Overwrite: true})
	require.NoError(t, err)
	assert.Equal(t, StatusOverwritten, res.Status)

	data, err := os.ReadFile(filepath.Join(root, "f.md"))
	require.NoError(t, err)
	assert.Equal(t, "replacement", string(data))
}

func TestWrite_DryRunSkipStillWinsOverWouldOverwrite(t *testing.T) {
	// exists + overwrite=false is a skip regardless of dryRun.
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "f.md"), []byte("original"), 0o644))

	res, err := Write(root, "f.md", "replacement", Options{DryRun: true})
	require.NoError(t, err)
	assert.Equal(t, StatusSkipped, res.Status)
}

func TestWrite_PropagatesFilesystemErrors(t *testing.T) {
	root := t.TempDir()
	// A regular file where a parent directory is needed forces MkdirAll to fail.
	require.NoError(t, os.WriteFile(filepath.Join(root, "blocker"), []byte(""), 0o644))

	_, err := Write(root, "blocker/child.md", "content", Options{})
	assert.Error(t, err)
}
