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
package extract_test

import (
	"bytes"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/egasimus/hfedisk/internal/extract"
	"github.com/egasimus/hfedisk/internal/hfe"
	"github.com/egasimus/hfedisk/internal/hfe/hfetest"
	"github.com/egasimus/hfedisk/internal/image"
	"github.com/egasimus/hfedisk/internal/logger"
	"github.com/egasimus/hfedisk/internal/render"
	"github.com/egasimus/hfedisk/pkg/dfxml"
	"github.com/stretchr/testify/require"
)

func decodeTestDisk(t *testing.T) ([]byte, *hfe.Disk) {
	t.Helper()

	rng := rand.New(rand.NewSource(11))
	data := hfetest.NewBuilder(hfetest.DefaultHeader()).
		AddTrack(hfetest.RandomBlock(rng), hfetest.RandomBlock(rng)).
		AddTrack(hfetest.RandomBlock(rng)).
		Bytes()

	disk, err := hfe.Decode(data)
	require.NoError(t, err)
	return data, disk
}

func TestExtract(t *testing.T) {
	data, disk := decodeTestDisk(t)
	outDir := filepath.Join(t.TempDir(), "dump")

	var progress bytes.Buffer
	res, err := extract.Extract(disk, extract.Source{Path: "disk.hfe", Size: len(data)}, extract.Options{
		OutputDir: outDir,
		Decoded:   true,
		Progress:  &progress,
	}, logger.Discard())
	require.NoError(t, err)
	require.Len(t, res.Files, 8)
	require.Contains(t, progress.String(), "(2/2 tracks)")

	raw, err := os.ReadFile(filepath.Join(outDir, "track00.side1.raw"))
	require.NoError(t, err)
	require.Equal(t, render.RawSamples(disk.Tracks[0].Samples(1)), raw)

	bin, err := os.ReadFile(filepath.Join(outDir, "track01.side0.bin"))
	require.NoError(t, err)
	require.Equal(t, disk.Tracks[1].Decoded(0), bin)

	f, err := os.Open(filepath.Join(outDir, extract.ReportFileName))
	require.NoError(t, err)
	defer f.Close()

	objs, err := dfxml.ReadFileObjects(f)
	require.NoError(t, err)
	require.Len(t, objs, 4)

	// Every byte run of the report must point at the raw samples of the file.
	for _, obj := range objs {
		content, err := os.ReadFile(filepath.Join(outDir, obj.Filename))
		require.NoError(t, err)
		require.Equal(t, obj.FileSize, uint64(len(content)))

		for _, run := range obj.ByteRuns.Runs {
			require.Equal(t,
				data[run.ImgOffset:run.ImgOffset+run.Length],
				content[run.Offset:run.Offset+run.Length],
				"file %s run at %d", obj.Filename, run.Offset)
		}
	}
}

func TestExtractCompressed(t *testing.T) {
	data, disk := decodeTestDisk(t)
	outDir := t.TempDir()

	res, err := extract.Extract(disk, extract.Source{Path: "disk.hfe", Size: len(data)}, extract.Options{
		OutputDir: outDir,
		Compress:  true,
	}, logger.Discard())
	require.NoError(t, err)
	require.Equal(t, []string{
		"track00.side0.raw.zst",
		"track00.side1.raw.zst",
		"track01.side0.raw.zst",
		"track01.side1.raw.zst",
	}, res.Files)

	compressed, err := os.ReadFile(filepath.Join(outDir, "track00.side0.raw.zst"))
	require.NoError(t, err)

	raw, err := image.Decompress(compressed)
	require.NoError(t, err)
	require.Equal(t, render.RawSamples(disk.Tracks[0].Samples(0)), raw)
}

func TestExtractRequiresEmptyDir(t *testing.T) {
	_, disk := decodeTestDisk(t)
	outDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(outDir, "keep"), nil, 0644))

	_, err := extract.Extract(disk, extract.Source{}, extract.Options{OutputDir: outDir}, logger.Discard())
	require.Error(t, err)
}

func TestFileObject(t *testing.T) {
	track := &hfe.Track{
		Info:   hfe.TrackInfo{Offset: 3, Length: 2048},
		Blocks: make([]hfe.TrackBlock, 2),
	}

	obj := extract.FileObject("track00.side1.raw", track, 1)
	require.Equal(t, uint64(1024), obj.FileSize)
	require.Equal(t, []dfxml.ByteRun{
		{Offset: 0, ImgOffset: 3*512 + 512, Length: 512},
		{Offset: 512, ImgOffset: 3*512 + 1024 + 512, Length: 512},
	}, obj.ByteRuns.Runs)
}
