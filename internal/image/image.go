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

// Package image loads HFE images from disk into memory, transparently
// decompressing zstd-compressed images.
package image

import (
	"bytes"
	"fmt"

	"github.com/egasimus/hfedisk/internal/hfe"
	"github.com/egasimus/hfedisk/internal/mmap"
	"github.com/klauspost/compress/zstd"
)

var zstdMagic = []byte{0x28, 0xB5, 0x2F, 0xFD}

type Image struct {
	Path       string
	Compressed bool

	data []byte
	mf   *mmap.File
}

// Load maps the file at path. A zstd stream is decoded into memory and the
// mapping released right away.
func Load(path string) (*Image, error) {
	mf, err := mmap.Open(path)
	if err != nil {
		return nil, err
	}

	if !bytes.HasPrefix(mf.Data, zstdMagic) {
		return &Image{Path: path, data: mf.Data, mf: mf}, nil
	}
	defer mf.Close()

	data, err := Decompress(mf.Data)
	if err != nil {
		return nil, fmt.Errorf("failed to decompress %q: %w", path, err)
	}
	return &Image{Path: path, Compressed: true, data: data}, nil
}

func Decompress(src []byte) ([]byte, error) {
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, err
	}
	defer dec.Close()

	return dec.DecodeAll(src, nil)
}

func (img *Image) Bytes() []byte {
	return img.data
}

func (img *Image) Size() int {
	return len(img.data)
}

// Decode runs the HFE decoder over the loaded bytes.
func (img *Image) Decode() (*hfe.Disk, error) {
	disk, err := hfe.Decode(img.data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %q: %w", img.Path, err)
	}
	return disk, nil
}

// Close releases the mapping. The decoded disk holds copies of every
// sample and stays valid afterwards.
func (img *Image) Close() error {
	img.data = nil
	if img.mf != nil {
		err := img.mf.Close()
		img.mf = nil
		return err
	}
	return nil
}
