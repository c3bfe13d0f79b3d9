// Copyright (c) 2025 Stefano Scafiti
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.
package image_test

import (
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/egasimus/hfedisk/internal/hfe"
	"github.com/egasimus/hfedisk/internal/hfe/hfetest"
	"github.com/egasimus/hfedisk/internal/image"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/require"
)

func writeImage(t *testing.T, name string, data []byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0644))
	return path
}

func TestLoad(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	blk := hfetest.RandomBlock(rng)
	data := hfetest.NewBuilder(hfetest.DefaultHeader()).AddTrack(blk).Bytes()

	img, err := image.Load(writeImage(t, "disk.hfe", data))
	require.NoError(t, err)
	defer img.Close()

	require.False(t, img.Compressed)
	require.Equal(t, data, img.Bytes())
	require.Equal(t, len(data), img.Size())

	disk, err := img.Decode()
	require.NoError(t, err)
	require.Equal(t, blk, disk.Tracks[0].Blocks[0])

	require.NoError(t, img.Close())
	require.Equal(t, blk, disk.Tracks[0].Blocks[0])
}

func TestLoadCompressed(t *testing.T) {
	data := hfetest.NewBuilder(hfetest.DefaultHeader()).
		AddTrack(hfe.TrackBlock{}, hfe.TrackBlock{}).
		Bytes()

	enc, err := zstd.NewWriter(nil)
	require.NoError(t, err)
	compressed := enc.EncodeAll(data, nil)
	require.NoError(t, enc.Close())

	img, err := image.Load(writeImage(t, "disk.hfe.zst", compressed))
	require.NoError(t, err)
	defer img.Close()

	require.True(t, img.Compressed)
	require.Equal(t, data, img.Bytes())

	disk, err := img.Decode()
	require.NoError(t, err)
	require.Len(t, disk.Tracks[0].Blocks, 2)
}

func TestLoadCorruptCompressed(t *testing.T) {
	data := []byte{0x28, 0xB5, 0x2F, 0xFD, 0x00, 0x01, 0x02}

	_, err := image.Load(writeImage(t, "bad.hfe.zst", data))
	require.Error(t, err)
}

func TestDecodeWrapsError(t *testing.T) {
	img, err := image.Load(writeImage(t, "notes.txt", []byte("not an image at all")))
	require.NoError(t, err)
	defer img.Close()

	_, err = img.Decode()
	require.ErrorIs(t, err, hfe.ErrBadMagic)
	require.Contains(t, err.Error(), "notes.txt")
}
