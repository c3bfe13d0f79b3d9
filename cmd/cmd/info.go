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
	"fmt"

	"github.com/egasimus/hfedisk/internal/render"
	"github.com/egasimus/hfedisk/pkg/util/format"
	"github.com/spf13/cobra"
)

func DefineInfoCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info <image>",
		Short: "Print the header and track table of an HFE image",
		Long: `The 'info' command decodes an HFE image and prints its header fields followed by the track table.
For every track the table lists the offset of its data region, its declared length and the number of whole blocks it holds.
Bytes of a region that do not fill a whole block are reported as trailing and are never decoded.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE:         RunInfo,
	}

	cmd.Flags().Bool("no-tracks", false, "print the header only")
	return cmd
}

func RunInfo(cmd *cobra.Command, args []string) error {
	log, err := newLogger(cmd)
	if err != nil {
		return err
	}

	img, disk, err := loadDisk(args[0], log)
	if err != nil {
		return err
	}
	defer img.Close()

	out := cmd.OutOrStdout()

	h := &disk.Header
	fmt.Fprintf(out, "Image: %s (%s", args[0], format.FormatBytes(int64(img.Size())))
	if img.Compressed {
		fmt.Fprint(out, ", zstd")
	}
	fmt.Fprintln(out, ")")
	fmt.Fprintln(out, h.String())
	fmt.Fprintf(out, "Data Rate: %s\n", format.FormatBitrate(h.Bitrate))

	noTracks, _ := cmd.Flags().GetBool("no-tracks")
	if noTracks {
		return nil
	}

	fmt.Fprintln(out)
	return render.TrackTable(out, disk.Tracks)
}
