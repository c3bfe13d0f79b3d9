package hfe

import (
	"encoding/binary"
	"fmt"
)

const (
	TrackInfoSize   = 4
	SamplesPerSide  = 256
	TrackBlockSize  = 2 * SamplesPerSide * 2
	sideBytesPerBlk = SamplesPerSide * 2
)

// TrackInfo is one entry of the track offset table.
type TrackInfo struct {
	Offset uint16 // in 512-byte units
	Length uint16 // in bytes
}

func (ti TrackInfo) ByteOffset() int {
	return int(ti.Offset) * BlockUnit
}

// BlockCount is the number of whole blocks held by the track region.
func (ti TrackInfo) BlockCount() int {
	return int(ti.Length) / TrackBlockSize
}

// TrailingBytes is the part of the region that does not fill a block and is
// therefore never decoded.
func (ti TrackInfo) TrailingBytes() int {
	return int(ti.Length) % TrackBlockSize
}

// TrackBlock is a 1024-byte window of raw flux samples, side 0 first.
type TrackBlock struct {
	Side0 [SamplesPerSide]uint16
	Side1 [SamplesPerSide]uint16
}

// Side returns the samples of side 0 or side 1.
func (b *TrackBlock) Side(side int) []uint16 {
	if side == 0 {
		return b.Side0[:]
	}
	return b.Side1[:]
}

// DecodeSide runs DecodeFlux over every sample of a side.
func (b *TrackBlock) DecodeSide(side int) []byte {
	return DecodeSamples(b.Side(side))
}

// ReadTrackTable reads exactly n records starting at the cursor.
func ReadTrackTable(r *Reader, n int) ([]TrackInfo, error) {
	infos := make([]TrackInfo, n)
	for i := range infos {
		buf, err := r.Next(TrackInfoSize)
		if err != nil {
			return nil, fmt.Errorf("track %d: %w", i, ErrTruncatedTrackTable)
		}
		infos[i] = TrackInfo{
			Offset: binary.LittleEndian.Uint16(buf[0:2]),
			Length: binary.LittleEndian.Uint16(buf[2:4]),
		}
	}
	return infos, nil
}

// ReadTrackTableAt seeks to the table declared by h and reads it.
func ReadTrackTableAt(r *Reader, h *Header) ([]TrackInfo, error) {
	r.SeekBlock(int(h.TrackListOffset))
	return ReadTrackTable(r, int(h.Tracks))
}

// ReadTrackBlocks reads the whole blocks of a track region. A region whose
// length is not a multiple of TrackBlockSize leaves its tail unread.
func ReadTrackBlocks(r *Reader, info TrackInfo) ([]TrackBlock, error) {
	start := info.ByteOffset()
	r.Seek(start)

	blocks := make([]TrackBlock, 0, info.BlockCount())
	for r.Offset()-start+TrackBlockSize <= int(info.Length) {
		buf, err := r.Next(TrackBlockSize)
		if err != nil {
			return nil, fmt.Errorf("block %d: %w", len(blocks), ErrTruncatedBlock)
		}
		blocks = append(blocks, decodeBlock(buf))
	}
	return blocks, nil
}

func decodeBlock(buf []byte) TrackBlock {
	var blk TrackBlock
	for i := 0; i < SamplesPerSide; i++ {
		blk.Side0[i] = binary.LittleEndian.Uint16(buf[2*i:])
		blk.Side1[i] = binary.LittleEndian.Uint16(buf[sideBytesPerBlk+2*i:])
	}
	return blk
}

type Track struct {
	Info   TrackInfo
	Blocks []TrackBlock
}

// Samples concatenates the samples of a side across all blocks.
func (t *Track) Samples(side int) []uint16 {
	samples := make([]uint16, 0, len(t.Blocks)*SamplesPerSide)
	for i := range t.Blocks {
		samples = append(samples, t.Blocks[i].Side(side)...)
	}
	return samples
}

func (t *Track) Decoded(side int) []byte {
	return DecodeSamples(t.Samples(side))
}
