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
package fuse

import (
	"bytes"
	"sort"

	"github.com/egasimus/hfedisk/internal/hfe"
	"github.com/egasimus/hfedisk/internal/render"
)

// FileEntry is a read-only file of the mounted view.
type FileEntry struct {
	Name string
	Data []byte
}

// BuildEntries lays out a decoded disk as a flat directory: the header, the
// track table, then raw and decoded samples of both sides of every track.
func BuildEntries(d *hfe.Disk) ([]FileEntry, error) {
	var table bytes.Buffer
	if err := render.TrackTable(&table, d.Tracks); err != nil {
		return nil, err
	}

	entries := []FileEntry{
		{Name: "header.txt", Data: []byte(d.Header.String() + "\n")},
		{Name: "tracks.txt", Data: table.Bytes()},
	}

	for i := range d.Tracks {
		t := &d.Tracks[i]
		for side := 0; side < 2; side++ {
			samples := t.Samples(side)
			entries = append(entries,
				FileEntry{Name: render.TrackFileName(i, side, "raw"), Data: render.RawSamples(samples)},
				FileEntry{Name: render.TrackFileName(i, side, "bin"), Data: hfe.DecodeSamples(samples)},
			)
		}
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name < entries[j].Name
	})
	return entries, nil
}
