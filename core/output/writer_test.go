package output

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilenameFromURL(t *testing.T) {
	assert.Equal(t, "example_com", filenameFromURL("https://example.com/"))
	assert.Equal(t, "example_com_docs_intro", filenameFromURL("https://example.com/docs/intro"))
	assert.Equal(t, "localhost_8080_a_b", filenameFromURL("http://localhost:8080/a.b"))
}

func TestWriteOnly(t *testing.T) {
	dir := t.TempDir()
	w, err := New(dir)
	require.NoError(t, err)

	path, err := w.WriteOnly("https://example.com/album", []byte("{}"), ".json")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "example_com_album.json"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{}", string(data))
}

func TestWriteAll(t *testing.T) {
	dir := t.TempDir()
	w, err := New(filepath.Join(dir, "nested"))
	require.NoError(t, err)

	path, err := w.WriteAll("https://example.com/docs/intro/", []byte("x"), ".md")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "nested", "docs", "intro.md"), path)

	path, err = w.WriteAll("https://example.com", []byte("x"), ".md")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "nested", "index.md"), path)
}

func TestWriteAllRejectsTraversal(t *testing.T) {
	w, err := New(t.TempDir())
	require.NoError(t, err)

	_, err = w.WriteAll("https://example.com/a/../../../etc/passwd", []byte("x"), ".md")
	assert.Error(t, err)
}
