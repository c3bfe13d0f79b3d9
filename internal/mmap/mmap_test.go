package mmap_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/egasimus/hfedisk/internal/mmap"
	"github.com/stretchr/testify/require"
)

func TestOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "image.hfe")
	want := []byte("HXCPICFE and some payload")
	require.NoError(t, os.WriteFile(path, want, 0644))

	f, err := mmap.Open(path)
	require.NoError(t, err)
	require.Equal(t, want, f.Data)
	require.Equal(t, len(want), f.FileSize)

	require.NoError(t, f.Close())
	require.Nil(t, f.Data)
	require.NoError(t, f.Close())
}

func TestOpenEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.hfe")
	require.NoError(t, os.WriteFile(path, nil, 0644))

	_, err := mmap.Open(path)
	require.Error(t, err)
}

func TestOpenMissing(t *testing.T) {
	_, err := mmap.Open(filepath.Join(t.TempDir(), "missing.hfe"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
