package wordfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeList(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeList(t, "Crane\nslate\n\n  MOUNT  \n")
	words, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"crane", "slate", "mount"}, words)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.txt"))
	assert.Error(t, err)
}

func TestRemove(t *testing.T) {
	path := writeList(t, "crane\nslate\nmount\n")
	require.NoError(t, Remove(path, "slate"))

	words, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"crane", "mount"}, words)
}

func TestRemoveMissingWord(t *testing.T) {
	path := writeList(t, "crane\nslate\n")
	err := Remove(path, "mount")
	assert.ErrorIs(t, err, ErrWordNotFound)

	words, loadErr := Load(path)
	require.NoError(t, loadErr)
	assert.Equal(t, []string{"crane", "slate"}, words, "file untouched on failure")
}
