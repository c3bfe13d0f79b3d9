package hfe

import "fmt"

// TrackEncoding is the encoding declared for the whole disk or for track 0
// of a single side.
type TrackEncoding uint8

const (
	EncodingISOIBMMFM TrackEncoding = 0x00
	EncodingAmigaMFM  TrackEncoding = 0x01
	EncodingISOIBMFM  TrackEncoding = 0x02
	EncodingEmuFM     TrackEncoding = 0x03
	EncodingUnknown   TrackEncoding = 0xFF
)

var trackEncodingNames = map[TrackEncoding]string{
	EncodingISOIBMMFM: "ISO/IBM MFM",
	EncodingAmigaMFM:  "Amiga MFM",
	EncodingISOIBMFM:  "ISO/IBM FM",
	EncodingEmuFM:     "Emulated FM",
	EncodingUnknown:   "Unknown",
}

func ParseTrackEncoding(b byte) (TrackEncoding, error) {
	return parseEnum(trackEncodingNames, "track encoding", b)
}

func (e TrackEncoding) String() string {
	return enumName(trackEncodingNames, e)
}

// InterfaceMode selects the drive profile the emulator presents to the host.
type InterfaceMode uint8

const (
	ModeIBMPCDD          InterfaceMode = 0x00
	ModeIBMPCHD          InterfaceMode = 0x01
	ModeAtariSTDD        InterfaceMode = 0x02
	ModeAtariSTHD        InterfaceMode = 0x03
	ModeAmigaDD          InterfaceMode = 0x04
	ModeAmigaHD          InterfaceMode = 0x05
	ModeCPCDD            InterfaceMode = 0x06
	ModeGenericShugartDD InterfaceMode = 0x07
	ModeIBMPCED          InterfaceMode = 0x08
	ModeMSX2DD           InterfaceMode = 0x09
	ModeC64DD            InterfaceMode = 0x0A
	ModeEmuShugart       InterfaceMode = 0x0B
	ModeS950DD           InterfaceMode = 0x0C
	ModeS950HD           InterfaceMode = 0x0D
	ModeDisable          InterfaceMode = 0xFE
)

var interfaceModeNames = map[InterfaceMode]string{
	ModeIBMPCDD:          "IBM PC DD",
	ModeIBMPCHD:          "IBM PC HD",
	ModeAtariSTDD:        "Atari ST DD",
	ModeAtariSTHD:        "Atari ST HD",
	ModeAmigaDD:          "Amiga DD",
	ModeAmigaHD:          "Amiga HD",
	ModeCPCDD:            "Amstrad CPC DD",
	ModeGenericShugartDD: "Generic Shugart DD",
	ModeIBMPCED:          "IBM PC ED",
	ModeMSX2DD:           "MSX2 DD",
	ModeC64DD:            "C64 DD",
	ModeEmuShugart:       "Emulated Shugart",
	ModeS950DD:           "Akai S950 DD",
	ModeS950HD:           "Akai S950 HD",
	ModeDisable:          "Disabled",
}

func ParseInterfaceMode(b byte) (InterfaceMode, error) {
	return parseEnum(interfaceModeNames, "interface mode", b)
}

func (m InterfaceMode) String() string {
	return enumName(interfaceModeNames, m)
}

type StepMode uint8

const (
	StepDouble StepMode = 0x00
	StepSingle StepMode = 0xFF
)

var stepModeNames = map[StepMode]string{
	StepDouble: "Double",
	StepSingle: "Single",
}

func ParseStepMode(b byte) (StepMode, error) {
	return parseEnum(stepModeNames, "step mode", b)
}

func (s StepMode) String() string {
	return enumName(stepModeNames, s)
}

// UseAltEncoding tells whether track 0 of a side overrides the disk encoding.
// Note the inverted polarity: 0x00 enables the override.
type UseAltEncoding uint8

const (
	AltEncodingYes UseAltEncoding = 0x00
	AltEncodingNo  UseAltEncoding = 0xFF
)

var useAltEncodingNames = map[UseAltEncoding]string{
	AltEncodingYes: "Yes",
	AltEncodingNo:  "No",
}

func ParseUseAltEncoding(b byte) (UseAltEncoding, error) {
	return parseEnum(useAltEncodingNames, "alternate encoding flag", b)
}

func (u UseAltEncoding) String() string {
	return enumName(useAltEncodingNames, u)
}

func (u UseAltEncoding) Enabled() bool {
	return u == AltEncodingYes
}

func parseEnum[T ~uint8](names map[T]string, field string, b byte) (T, error) {
	v := T(b)
	if _, ok := names[v]; !ok {
		return 0, &InvalidEnumValueError{Field: field, Value: b}
	}
	return v, nil
}

func enumName[T ~uint8](names map[T]string, v T) string {
	if name, ok := names[v]; ok {
		return name
	}
	return fmt.Sprintf("0x%02X", uint8(v))
}
