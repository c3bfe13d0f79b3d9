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
package render_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/egasimus/hfedisk/internal/hfe"
	"github.com/egasimus/hfedisk/internal/render"
	"github.com/stretchr/testify/require"
)

func TestTrackTable(t *testing.T) {
	tracks := []hfe.Track{
		{Info: hfe.TrackInfo{Offset: 2, Length: 2048}, Blocks: make([]hfe.TrackBlock, 2)},
		{Info: hfe.TrackInfo{Offset: 6, Length: 1025}, Blocks: make([]hfe.TrackBlock, 1)},
	}

	var buf bytes.Buffer
	require.NoError(t, render.TrackTable(&buf, tracks))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	require.Equal(t, []string{"TRACK", "OFFSET", "POSITION", "LENGTH", "BLOCKS", "TRAILING"}, strings.Fields(lines[0]))
	require.Equal(t, []string{"0", "2", "0x400", "2KB", "2", "0"}, strings.Fields(lines[1]))
	require.Equal(t, []string{"1", "6", "0xC00", "1.00KB", "1", "1"}, strings.Fields(lines[2]))
}
