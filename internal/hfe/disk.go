package hfe

import "fmt"

type Disk struct {
	Header Header
	Tracks []Track
}

// BlockReaderFunc produces the block stream of a single track.
type BlockReaderFunc func(info TrackInfo) ([]TrackBlock, error)

// Assemble pairs every table entry with its blocks, in table order.
func Assemble(h Header, infos []TrackInfo, read BlockReaderFunc) (*Disk, error) {
	tracks := make([]Track, len(infos))
	for i, info := range infos {
		blocks, err := read(info)
		if err != nil {
			return nil, fmt.Errorf("track %d: %w", i, err)
		}
		tracks[i] = Track{Info: info, Blocks: blocks}
	}
	return &Disk{Header: h, Tracks: tracks}, nil
}

// Decode parses a whole image held in memory.
func Decode(data []byte) (*Disk, error) {
	r := NewReader(data)

	h, err := ReadHeader(r)
	if err != nil {
		return nil, err
	}

	infos, err := ReadTrackTableAt(r, &h)
	if err != nil {
		return nil, err
	}

	return Assemble(h, infos, func(info TrackInfo) ([]TrackBlock, error) {
		return ReadTrackBlocks(r, info)
	})
}

// Track returns the i-th track of the disk.
func (d *Disk) Track(i int) (*Track, error) {
	if i < 0 || i >= len(d.Tracks) {
		return nil, fmt.Errorf("track %d out of range [0, %d)", i, len(d.Tracks))
	}
	return &d.Tracks[i], nil
}
