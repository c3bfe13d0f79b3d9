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
package cmd

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/egasimus/hfedisk/internal/extract"
	"github.com/egasimus/hfedisk/pkg/util/format"
	"github.com/spf13/cobra"
)

func DefineExtractCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extract <image>",
		Short: "Write the samples of every track to separate files",
		Long: `The 'extract' command writes the raw flux samples of each side of each track to its own file.
Raw files keep the little-endian sample layout of the image. With --decoded, the decoded data bytes are written as well.
A DFXML report mapping every raw file back to its byte ranges in the image is written to report.xml.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE:         RunExtract,
	}

	cmd.Flags().StringP("output-dir", "o", "", "directory where track files will be placed (default: <image>-tracks)")
	cmd.Flags().Bool("decoded", false, "also write decoded data bytes")
	cmd.Flags().Bool("zstd", false, "compress every file with zstd")
	cmd.Flags().Bool("no-progress", false, "disable the progress bar")

	return cmd
}

func RunExtract(cmd *cobra.Command, args []string) error {
	log, err := newLogger(cmd)
	if err != nil {
		return err
	}

	opts, err := parseExtractOptions(cmd, args[0])
	if err != nil {
		return err
	}

	img, disk, err := loadDisk(args[0], log)
	if err != nil {
		return err
	}
	defer img.Close()

	log.Infof("Extracting %d tracks into %s", len(disk.Tracks), opts.OutputDir)

	res, err := extract.Extract(disk, extract.Source{Path: absPath(args[0]), Size: img.Size()}, opts, log)
	if err != nil {
		return err
	}

	log.Infof("Extraction completed. %d files, %s written.", len(res.Files), format.FormatBytes(res.BytesWritten))
	return nil
}

func parseExtractOptions(cmd *cobra.Command, imagePath string) (extract.Options, error) {
	outDir, _ := cmd.Flags().GetString("output-dir")
	decoded, _ := cmd.Flags().GetBool("decoded")
	compress, _ := cmd.Flags().GetBool("zstd")
	noProgress, _ := cmd.Flags().GetBool("no-progress")

	if outDir == "" {
		wdir, err := os.Getwd()
		if err != nil {
			return extract.Options{}, err
		}
		outDir = filepath.Join(wdir, imageBaseName(imagePath)+"-tracks")
	}

	opts := extract.Options{
		OutputDir: outDir,
		Compress:  compress,
		Decoded:   decoded,
	}
	if !noProgress {
		opts.Progress = cmd.ErrOrStderr()
	}
	return opts, nil
}

// imageBaseName strips the directory and every extension, so that both
// "disk.hfe" and "disk.hfe.zst" give "disk".
func imageBaseName(path string) string {
	base := filepath.Base(path)
	if i := strings.IndexByte(base, '.'); i > 0 {
		return base[:i]
	}
	return base
}

func absPath(path string) string {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return absPath
}
