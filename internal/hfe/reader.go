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
package hfe

import (
	"encoding/binary"
	"io"
)

// BlockUnit is the granularity of every offset stored in an HFE image.
const BlockUnit = 512

// Reader is a cursor over an in-memory image. It never copies the
// underlying buffer and is not safe for concurrent use.
type Reader struct {
	data []byte

	off int
}

func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// Offset returns the current cursor position.
func (r *Reader) Offset() int {
	return r.off
}

func (r *Reader) Len() int {
	if r.off >= len(r.data) {
		return 0
	}
	return len(r.data) - r.off
}

// Seek moves the cursor to an absolute position. Positions past the end of
// the buffer are allowed: the next read reports a short buffer.
func (r *Reader) Seek(off int) {
	r.off = off
}

// SeekBlock moves the cursor to the start of the n-th 512-byte unit.
func (r *Reader) SeekBlock(n int) {
	r.Seek(n * BlockUnit)
}

// Next returns the next n bytes and advances the cursor. On a short buffer
// it returns io.ErrUnexpectedEOF and leaves the cursor where it was.
func (r *Reader) Next(n int) ([]byte, error) {
	if r.Len() < n {
		return nil, io.ErrUnexpectedEOF
	}
	b := r.data[r.off : r.off+n]
	r.off += n
	return b, nil
}

func (r *Reader) ReadByte() (byte, error) {
	b, err := r.Next(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (r *Reader) ReadUint16() (uint16, error) {
	b, err := r.Next(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}
