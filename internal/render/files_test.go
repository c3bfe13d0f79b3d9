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
	"testing"

	"github.com/egasimus/hfedisk/internal/render"
	"github.com/stretchr/testify/require"
)

func TestTrackFileName(t *testing.T) {
	require.Equal(t, "track07.side1.raw", render.TrackFileName(7, 1, "raw"))
	require.Equal(t, "track81.side0.bin", render.TrackFileName(81, 0, "bin"))
}

func TestRawSamples(t *testing.T) {
	require.Equal(t, []byte{0x34, 0x12, 0xFF, 0x00}, render.RawSamples([]uint16{0x1234, 0x00FF}))
	require.Empty(t, render.RawSamples(nil))
}
