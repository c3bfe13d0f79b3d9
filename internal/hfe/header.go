package hfe

import (
	"bytes"
	"fmt"
)

const (
	Signature  = "HXCPICFE"
	HeaderSize = 25
)

type Header struct {
	FormatRevision   uint8
	Tracks           uint8
	Sides            uint8
	Encoding         TrackEncoding
	Bitrate          uint16 // Kbit/s
	RPM              uint16
	Mode             InterfaceMode
	Reserved         uint8
	TrackListOffset  uint8 // in 512-byte units
	Writable         uint8 // 0xFF when writes are allowed
	Step             StepMode
	Side0AltEncoding UseAltEncoding
	Side0Encoding    TrackEncoding
	Side1AltEncoding UseAltEncoding
	Side1Encoding    TrackEncoding
}

// ReadHeader decodes the fixed header at the cursor. The signature is
// checked before anything else is read.
func ReadHeader(r *Reader) (Header, error) {
	var h Header

	sig, err := r.Next(len(Signature))
	if err != nil {
		return h, ErrTruncatedHeader
	}
	if !bytes.Equal(sig, []byte(Signature)) {
		return h, ErrBadMagic
	}

	hr := headerReader{r: r}

	h.FormatRevision = hr.readByte()
	h.Tracks = hr.readByte()
	h.Sides = hr.readByte()
	h.Encoding = hr.encoding()
	h.Bitrate = hr.readUint16()
	h.RPM = hr.readUint16()
	h.Mode = hr.mode()
	h.Reserved = hr.readByte()
	h.TrackListOffset = hr.readByte()
	h.Writable = hr.readByte()
	h.Step = hr.step()
	h.Side0AltEncoding = hr.altEncoding()
	h.Side0Encoding = hr.encoding()
	h.Side1AltEncoding = hr.altEncoding()
	h.Side1Encoding = hr.encoding()

	if hr.err != nil {
		return Header{}, hr.err
	}
	return h, nil
}

// headerReader keeps the first error and turns every later read into a
// no-op, so that ReadHeader can list fields in layout order.
type headerReader struct {
	r   *Reader
	err error
}

func (hr *headerReader) readByte() byte {
	if hr.err != nil {
		return 0
	}
	b, err := hr.r.ReadByte()
	if err != nil {
		hr.err = ErrTruncatedHeader
	}
	return b
}

func (hr *headerReader) readUint16() uint16 {
	if hr.err != nil {
		return 0
	}
	v, err := hr.r.ReadUint16()
	if err != nil {
		hr.err = ErrTruncatedHeader
	}
	return v
}

func (hr *headerReader) encoding() TrackEncoding {
	return parseField(hr, ParseTrackEncoding)
}

func (hr *headerReader) mode() InterfaceMode {
	return parseField(hr, ParseInterfaceMode)
}

func (hr *headerReader) step() StepMode {
	return parseField(hr, ParseStepMode)
}

func (hr *headerReader) altEncoding() UseAltEncoding {
	return parseField(hr, ParseUseAltEncoding)
}

func parseField[T ~uint8](hr *headerReader, parse func(byte) (T, error)) T {
	b := hr.readByte()
	if hr.err != nil {
		return 0
	}
	v, err := parse(b)
	if err != nil {
		hr.err = err
	}
	return v
}

// TrackListByteOffset is the absolute position of the track table.
func (h *Header) TrackListByteOffset() int {
	return int(h.TrackListOffset) * BlockUnit
}

func (h *Header) WriteProtected() bool {
	return h.Writable != 0xFF
}

func (h *Header) String() string {
	return fmt.Sprintf("--- HFE Header ---\n"+
		"Format Revision: %d\n"+
		"Tracks: %d\n"+
		"Sides: %d\n"+
		"Encoding: %s (0x%02X)\n"+
		"Bitrate: %d Kbit/s\n"+
		"RPM: %d\n"+
		"Interface Mode: %s (0x%02X)\n"+
		"Track List Offset: %d (0x%X)\n"+
		"Write Protected: %t (0x%02X)\n"+
		"Step: %s\n"+
		"Track 0 Side 0 Alt. Encoding: %s (%s)\n"+
		"Track 0 Side 1 Alt. Encoding: %s (%s)",
		h.FormatRevision,
		h.Tracks,
		h.Sides,
		h.Encoding, uint8(h.Encoding),
		h.Bitrate,
		h.RPM,
		h.Mode, uint8(h.Mode),
		h.TrackListOffset, h.TrackListByteOffset(),
		h.WriteProtected(), h.Writable,
		h.Step,
		h.Side0AltEncoding, h.Side0Encoding,
		h.Side1AltEncoding, h.Side1Encoding)
}
