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
package render

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/egasimus/hfedisk/internal/hfe"
	"github.com/egasimus/hfedisk/pkg/util/format"
)

// TrackTable writes one aligned row per track.
func TrackTable(w io.Writer, tracks []hfe.Track) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "TRACK\tOFFSET\tPOSITION\tLENGTH\tBLOCKS\tTRAILING")

	for i, t := range tracks {
		fmt.Fprintf(tw, "%d\t%d\t0x%X\t%s\t%d\t%d\n",
			i,
			t.Info.Offset,
			t.Info.ByteOffset(),
			format.FormatBytes(int64(t.Info.Length)),
			len(t.Blocks),
			t.Info.TrailingBytes(),
		)
	}
	return tw.Flush()
}
