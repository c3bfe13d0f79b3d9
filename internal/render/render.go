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
	"strings"

	"github.com/egasimus/hfedisk/internal/hfe"
)

type Style string

const (
	StyleBraille Style = "braille"
	StyleBits    Style = "bits"
	StyleHex     Style = "hex"
)

var Styles = []Style{StyleBraille, StyleBits, StyleHex}

func ParseStyle(s string) (Style, error) {
	for _, st := range Styles {
		if string(st) == strings.ToLower(s) {
			return st, nil
		}
	}
	return "", fmt.Errorf("unknown style %q", s)
}

// brailleBase is U+2800, the empty braille cell. The eight dots of a cell
// follow the bit order of its low byte.
const brailleBase = 0x2800

// Bytes renders decoded bytes in the given style.
func Bytes(data []byte, style Style) string {
	var sb strings.Builder

	switch style {
	case StyleBits:
		sb.Grow(len(data) * 8)
		for _, b := range data {
			fmt.Fprintf(&sb, "%08b", b)
		}
	case StyleHex:
		sb.Grow(len(data) * 2)
		for _, b := range data {
			fmt.Fprintf(&sb, "%02X", b)
		}
	default:
		for _, b := range data {
			sb.WriteRune(rune(brailleBase + int(b)))
		}
	}
	return sb.String()
}

// Side decodes raw samples and renders them as a single line.
func Side(samples []uint16, style Style) string {
	return Bytes(hfe.DecodeSamples(samples), style)
}

// Block renders side 0 and side 1 of a block on two lines.
func Block(blk *hfe.TrackBlock, style Style) string {
	return Side(blk.Side0[:], style) + "\n" + Side(blk.Side1[:], style)
}
