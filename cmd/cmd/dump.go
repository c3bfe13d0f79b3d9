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

	"github.com/egasimus/hfedisk/internal/hfe"
	"github.com/egasimus/hfedisk/internal/render"
	"github.com/spf13/cobra"
)

type DumpOptions struct {
	Track int // -1 dumps every track
	Side  int // -1 dumps both sides
	Style render.Style
}

func DefineDumpCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump <image>",
		Short: "Render the flux samples of an HFE image as bit patterns",
		Long: `The 'dump' command decodes every raw flux sample to a data byte and prints one line per block side.
Bytes are rendered as braille cells (one cell per byte, one dot per bit), as binary digits, or as hex.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE:         RunDump,
	}

	cmd.Flags().IntP("track", "t", -1, "track to dump (-1 for all tracks)")
	cmd.Flags().IntP("side", "s", -1, "side to dump: 0, 1 or -1 for both")
	cmd.Flags().String("style", string(render.StyleBraille), "rendering style: braille, bits or hex")

	return cmd
}

func parseDumpOptions(cmd *cobra.Command) (DumpOptions, error) {
	track, _ := cmd.Flags().GetInt("track")
	side, _ := cmd.Flags().GetInt("side")
	styleName, _ := cmd.Flags().GetString("style")

	if side < -1 || side > 1 {
		return DumpOptions{}, fmt.Errorf("invalid side %d", side)
	}

	style, err := render.ParseStyle(styleName)
	if err != nil {
		return DumpOptions{}, err
	}

	return DumpOptions{
		Track: track,
		Side:  side,
		Style: style,
	}, nil
}

func RunDump(cmd *cobra.Command, args []string) error {
	opts, err := parseDumpOptions(cmd)
	if err != nil {
		return err
	}

	log, err := newLogger(cmd)
	if err != nil {
		return err
	}

	img, disk, err := loadDisk(args[0], log)
	if err != nil {
		return err
	}
	defer img.Close()

	tracks := disk.Tracks
	first := 0
	if opts.Track >= 0 {
		t, err := disk.Track(opts.Track)
		if err != nil {
			return err
		}
		tracks = []hfe.Track{*t}
		first = opts.Track
	}

	out := cmd.OutOrStdout()
	for i := range tracks {
		t := &tracks[i]
		fmt.Fprintf(out, "--- Track %d (%d blocks) ---\n", first+i, len(t.Blocks))

		for j := range t.Blocks {
			blk := &t.Blocks[j]
			if opts.Side < 0 {
				fmt.Fprintln(out, render.Block(blk, opts.Style))
				continue
			}
			fmt.Fprintln(out, render.Side(blk.Side(opts.Side), opts.Style))
		}
	}
	return nil
}
