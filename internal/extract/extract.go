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
package extract

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/egasimus/hfedisk/internal/env"
	"github.com/egasimus/hfedisk/internal/hfe"
	"github.com/egasimus/hfedisk/internal/logger"
	"github.com/egasimus/hfedisk/internal/render"
	"github.com/egasimus/hfedisk/pkg/dfxml"
	"github.com/egasimus/hfedisk/pkg/pbar"
	osutils "github.com/egasimus/hfedisk/pkg/util/os"
	"github.com/klauspost/compress/zstd"
)

const ReportFileName = "report.xml"

type Options struct {
	OutputDir string
	Compress  bool      // write every track file as a zstd stream
	Decoded   bool      // also write decoded bytes next to raw samples
	Progress  io.Writer // progress bar destination, nil disables it
}

// Source identifies the image the disk was decoded from.
type Source struct {
	Path string
	Size int
}

type Result struct {
	Files        []string
	BytesWritten int64
}

// Extract writes the samples of every track side to its own file and a
// DFXML report mapping raw files back to image byte ranges.
func Extract(disk *hfe.Disk, src Source, opts Options, log *logger.Logger) (*Result, error) {
	if _, err := osutils.EnsureDir(opts.OutputDir, true); err != nil {
		return nil, err
	}

	reportFile, err := os.Create(filepath.Join(opts.OutputDir, ReportFileName))
	if err != nil {
		return nil, err
	}
	defer reportFile.Close()

	report := dfxml.NewDFXMLWriter(reportFile)
	err = report.WriteHeader(dfxml.DFXMLHeader{
		XmlOutput: dfxml.XmlOutputVersion,
		Metadata:  dfxml.DefaultMetadata,
		Creator: dfxml.Creator{
			Package:              env.AppName,
			Version:              env.Version,
			ExecutionEnvironment: dfxml.GetExecEnv(),
		},
		Source: dfxml.Source{
			ImageFilename: src.Path,
			SectorSize:    hfe.BlockUnit,
			ImageSize:     uint64(src.Size),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to write report header: %w", err)
	}

	var progress *pbar.ProgressBarState
	if opts.Progress != nil {
		progress = pbar.NewProgressBarState(opts.Progress, len(disk.Tracks))
	}

	res := &Result{}
	for i := range disk.Tracks {
		t := &disk.Tracks[i]
		log.Debugf("extracting track %d (%d blocks)", i, len(t.Blocks))

		for side := 0; side < 2; side++ {
			samples := t.Samples(side)

			name, n, err := writeTrackFile(opts, render.TrackFileName(i, side, "raw"), render.RawSamples(samples))
			if err != nil {
				return nil, err
			}
			res.add(name, n)

			if err := report.WriteFileObject(FileObject(name, t, side)); err != nil {
				return nil, fmt.Errorf("failed to write report entry for %s: %w", name, err)
			}

			if opts.Decoded {
				name, n, err := writeTrackFile(opts, render.TrackFileName(i, side, "bin"), hfe.DecodeSamples(samples))
				if err != nil {
					return nil, err
				}
				res.add(name, n)
			}
		}

		if progress != nil {
			progress.ProcessedTracks = i + 1
			progress.BytesWritten = res.BytesWritten
			progress.Render(false)
		}
	}

	if progress != nil {
		progress.Finish()
	}

	if err := report.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize report: %w", err)
	}
	log.Debugf("report lists %d file objects", report.Objects())
	return res, nil
}

func (r *Result) add(name string, n int64) {
	r.Files = append(r.Files, name)
	r.BytesWritten += n
}

// FileObject describes where the raw samples of one side of a track live in
// the image: every block contributes one run of 512 bytes.
func FileObject(name string, t *hfe.Track, side int) dfxml.FileObject {
	const sideSize = hfe.TrackBlockSize / 2

	runs := make([]dfxml.ByteRun, len(t.Blocks))
	for i := range t.Blocks {
		runs[i] = dfxml.ByteRun{
			Offset:    uint64(i * sideSize),
			ImgOffset: uint64(t.Info.ByteOffset() + i*hfe.TrackBlockSize + side*sideSize),
			Length:    sideSize,
		}
	}

	return dfxml.FileObject{
		Filename: name,
		FileSize: uint64(len(t.Blocks) * sideSize),
		ByteRuns: dfxml.ByteRuns{Runs: runs},
	}
}

// writeTrackFile returns the final file name and the number of bytes
// written to disk.
func writeTrackFile(opts Options, name string, data []byte) (string, int64, error) {
	if opts.Compress {
		name += ".zst"
	}

	path := filepath.Join(opts.OutputDir, name)
	f, err := os.Create(path)
	if err != nil {
		return "", 0, err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if opts.Compress {
		enc, err := zstd.NewWriter(w)
		if err != nil {
			return "", 0, err
		}
		if _, err := enc.Write(data); err != nil {
			enc.Close()
			return "", 0, fmt.Errorf("failed to compress %s: %w", path, err)
		}
		if err := enc.Close(); err != nil {
			return "", 0, fmt.Errorf("failed to compress %s: %w", path, err)
		}
	} else if _, err := w.Write(data); err != nil {
		return "", 0, fmt.Errorf("failed to write %s: %w", path, err)
	}

	if err := w.Flush(); err != nil {
		return "", 0, fmt.Errorf("error flushing writer: %w", err)
	}

	info, err := f.Stat()
	if err != nil {
		return "", 0, err
	}
	return name, info.Size(), nil
}
