// Package hfetest builds synthetic HFE images for tests.
package hfetest

import (
	"encoding/binary"
	"math/rand"

	"github.com/egasimus/hfedisk/internal/hfe"
)

// DefaultHeader describes a double density, double sided PC disk whose
// track table sits in the second 512-byte unit.
func DefaultHeader() hfe.Header {
	return hfe.Header{
		FormatRevision:   0,
		Sides:            2,
		Encoding:         hfe.EncodingISOIBMMFM,
		Bitrate:          250,
		RPM:              300,
		Mode:             hfe.ModeIBMPCDD,
		Reserved:         0xFF,
		TrackListOffset:  1,
		Writable:         0xFF,
		Step:             hfe.StepSingle,
		Side0AltEncoding: hfe.AltEncodingNo,
		Side0Encoding:    hfe.EncodingISOIBMMFM,
		Side1AltEncoding: hfe.AltEncodingNo,
		Side1Encoding:    hfe.EncodingISOIBMMFM,
	}
}

// EncodeHeader lays out h the way ReadHeader expects it.
func EncodeHeader(h hfe.Header) []byte {
	buf := make([]byte, hfe.HeaderSize)
	copy(buf, hfe.Signature)
	buf[8] = h.FormatRevision
	buf[9] = h.Tracks
	buf[10] = h.Sides
	buf[11] = byte(h.Encoding)
	binary.LittleEndian.PutUint16(buf[12:], h.Bitrate)
	binary.LittleEndian.PutUint16(buf[14:], h.RPM)
	buf[16] = byte(h.Mode)
	buf[17] = h.Reserved
	buf[18] = h.TrackListOffset
	buf[19] = h.Writable
	buf[20] = byte(h.Step)
	buf[21] = byte(h.Side0AltEncoding)
	buf[22] = byte(h.Side0Encoding)
	buf[23] = byte(h.Side1AltEncoding)
	buf[24] = byte(h.Side1Encoding)
	return buf
}

func EncodeBlock(blk hfe.TrackBlock) []byte {
	buf := make([]byte, hfe.TrackBlockSize)
	for i := 0; i < hfe.SamplesPerSide; i++ {
		binary.LittleEndian.PutUint16(buf[2*i:], blk.Side0[i])
		binary.LittleEndian.PutUint16(buf[hfe.TrackBlockSize/2+2*i:], blk.Side1[i])
	}
	return buf
}

type region struct {
	length uint16
	data   []byte
}

// Builder assembles an image: header, track table and one region per
// track, each region aligned on a 512-byte unit.
type Builder struct {
	header  hfe.Header
	regions []region
}

func NewBuilder(h hfe.Header) *Builder {
	return &Builder{header: h}
}

// AddTrack appends a track whose declared length covers exactly its blocks.
func (b *Builder) AddTrack(blocks ...hfe.TrackBlock) *Builder {
	var data []byte
	for _, blk := range blocks {
		data = append(data, EncodeBlock(blk)...)
	}
	return b.AddRegion(uint16(len(data)), data)
}

// AddRegion appends a track with an arbitrary declared length. The data may
// be shorter or longer than length.
func (b *Builder) AddRegion(length uint16, data []byte) *Builder {
	b.regions = append(b.regions, region{length: length, data: data})
	return b
}

// Infos returns the track table the builder is going to write.
func (b *Builder) Infos() []hfe.TrackInfo {
	tableEnd := int(b.header.TrackListOffset)*hfe.BlockUnit + len(b.regions)*hfe.TrackInfoSize
	next := roundUp(max(tableEnd, hfe.HeaderSize), hfe.BlockUnit) / hfe.BlockUnit

	infos := make([]hfe.TrackInfo, len(b.regions))
	for i, reg := range b.regions {
		infos[i] = hfe.TrackInfo{Offset: uint16(next), Length: reg.length}
		next += max(roundUp(len(reg.data), hfe.BlockUnit)/hfe.BlockUnit, 1)
	}
	return infos
}

// Header returns the header as written, with Tracks set to the number of
// added tracks.
func (b *Builder) Header() hfe.Header {
	h := b.header
	h.Tracks = uint8(len(b.regions))
	return h
}

// Bytes renders the image. The buffer ends right after the last region's
// data, so a region shorter than its declared length is truncated.
func (b *Builder) Bytes() []byte {
	infos := b.Infos()

	size := hfe.HeaderSize
	tableOff := int(b.header.TrackListOffset) * hfe.BlockUnit
	size = max(size, tableOff+len(infos)*hfe.TrackInfoSize)
	for i, reg := range b.regions {
		size = max(size, infos[i].ByteOffset()+len(reg.data))
	}

	buf := make([]byte, size)
	copy(buf, EncodeHeader(b.Header()))
	for i, info := range infos {
		off := tableOff + i*hfe.TrackInfoSize
		binary.LittleEndian.PutUint16(buf[off:], info.Offset)
		binary.LittleEndian.PutUint16(buf[off+2:], info.Length)
	}
	for i, reg := range b.regions {
		copy(buf[infos[i].ByteOffset():], reg.data)
	}
	return buf
}

func roundUp(n, m int) int {
	return (n + m - 1) / m * m
}

// RandomBlock fills both sides of a block with pseudo random samples.
func RandomBlock(rng *rand.Rand) hfe.TrackBlock {
	var blk hfe.TrackBlock
	for i := 0; i < hfe.SamplesPerSide; i++ {
		blk.Side0[i] = uint16(rng.Intn(1 << 16))
		blk.Side1[i] = uint16(rng.Intn(1 << 16))
	}
	return blk
}
