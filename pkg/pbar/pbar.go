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
package pbar

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/egasimus/hfedisk/pkg/util/format"
)

const MinRefreshRate = time.Millisecond * 500

// ProgressBarState tracks an operation over a known number of tracks.
type ProgressBarState struct {
	out io.Writer

	TotalTracks     int
	ProcessedTracks int
	BytesWritten    int64
	StartTime       time.Time
	LastUpdateTime  time.Time
}

func NewProgressBarState(out io.Writer, totalTracks int) *ProgressBarState {
	return &ProgressBarState{
		out:         out,
		TotalTracks: totalTracks,
		StartTime:   time.Now(),
	}
}

func (pbs *ProgressBarState) Render(force bool) {
	if !force && time.Since(pbs.LastUpdateTime) < MinRefreshRate {
		return
	}
	pbs.LastUpdateTime = time.Now()

	percentage := 100.0
	if pbs.TotalTracks > 0 {
		percentage = float64(pbs.ProcessedTracks) / float64(pbs.TotalTracks) * 100
	}

	const barLength = 20
	filledLen := int(float64(barLength) * percentage / 100)
	var bar string
	if filledLen >= barLength {
		bar = strings.Repeat("=", barLength)
	} else {
		bar = strings.Repeat("=", filledLen) + ">" + strings.Repeat(" ", barLength-filledLen-1)
	}

	// \r rewinds to the start of the line, trailing spaces clear leftovers
	// of a previous longer line.
	fmt.Fprintf(pbs.out, "\r[INFO] Progress: [%s] %3.0f%% (%d/%d tracks) | %s written | %s    ",
		bar,
		percentage,
		pbs.ProcessedTracks,
		pbs.TotalTracks,
		format.FormatBytes(pbs.BytesWritten),
		time.Since(pbs.StartTime).Round(time.Millisecond),
	)
}

func (pbs *ProgressBarState) Finish() {
	pbs.Render(true)
	fmt.Fprintln(pbs.out)
}
