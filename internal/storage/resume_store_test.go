package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewResumeStoreCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "uploads", "pdfs")

	_, err := NewResumeStore(dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestSaveOverwritesPriorFile(t *testing.T) {
	store, err := NewResumeStore(t.TempDir())
	require.NoError(t, err)

	path, err := store.Save("user-1", strings.NewReader("first version"))
	require.NoError(t, err)
	assert.Equal(t, store.Path("user-1"), path)

	_, err = store.Save("user-1", strings.NewReader("second version"))
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second version", string(content))
}

func TestPathKeyedByUser(t *testing.T) {
	store, err := NewResumeStore(t.TempDir())
	require.NoError(t, err)

	assert.True(t, strings.HasSuffix(store.Path("user-1"), "user-1.pdf"))
	assert.NotEqual(t, store.Path("user-1"), store.Path("user-2"))
}
