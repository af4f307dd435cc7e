package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"atelier/internal/config"
)

func TestLocalLister_ListImages(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.jpg", "a.JPEG", "notes.txt", "c.png"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "thumbs.jpg"), 0o755))

	files, err := NewLocalLister(dir).ListImages(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []File{
		{Name: "a.JPEG", Path: dir},
		{Name: "b.jpg", Path: dir},
		{Name: "c.png", Path: dir},
	}, files)
}

func TestLocalLister_MissingDir(t *testing.T) {
	_, err := NewLocalLister(filepath.Join(t.TempDir(), "missing")).ListImages(context.Background())
	assert.Error(t, err)
}

func TestNew(t *testing.T) {
	lister, err := New(context.Background(), config.StorageConfig{Backend: "local", PhotoDir: "x"})
	require.NoError(t, err)
	assert.IsType(t, &LocalLister{}, lister)

	_, err = New(context.Background(), config.StorageConfig{Backend: "ftp"})
	assert.Error(t, err)
}

func TestIsImage(t *testing.T) {
	assert.True(t, IsImage("IMG_001.JPG"))
	assert.True(t, IsImage("x.webp"))
	assert.False(t, IsImage("readme"))
	assert.False(t, IsImage("x.tiff"))
}
