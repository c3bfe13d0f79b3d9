package hfe_test

import (
	"testing"

	"github.com/egasimus/hfedisk/internal/hfe"
	"github.com/stretchr/testify/require"
)

func TestParseEnums(t *testing.T) {
	enums := []struct {
		field string
		parse func(b byte) (uint8, error)
		valid []byte
	}{
		{
			field: "track encoding",
			parse: func(b byte) (uint8, error) { v, err := hfe.ParseTrackEncoding(b); return uint8(v), err },
			valid: []byte{0x00, 0x01, 0x02, 0x03, 0xFF},
		},
		{
			field: "interface mode",
			parse: func(b byte) (uint8, error) { v, err := hfe.ParseInterfaceMode(b); return uint8(v), err },
			valid: []byte{0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09, 0x0A, 0x0B, 0x0C, 0x0D, 0xFE},
		},
		{
			field: "step mode",
			parse: func(b byte) (uint8, error) { v, err := hfe.ParseStepMode(b); return uint8(v), err },
			valid: []byte{0x00, 0xFF},
		},
		{
			field: "alternate encoding flag",
			parse: func(b byte) (uint8, error) { v, err := hfe.ParseUseAltEncoding(b); return uint8(v), err },
			valid: []byte{0x00, 0xFF},
		},
	}

	for _, e := range enums {
		t.Run(e.field, func(t *testing.T) {
			known := make(map[byte]bool, len(e.valid))
			for _, b := range e.valid {
				known[b] = true
			}

			for i := 0; i < 256; i++ {
				b := byte(i)
				v, err := e.parse(b)
				if known[b] {
					require.NoError(t, err)
					require.Equal(t, b, v)
					continue
				}

				var enumErr *hfe.InvalidEnumValueError
				require.ErrorAs(t, err, &enumErr)
				require.Equal(t, e.field, enumErr.Field)
				require.Equal(t, b, enumErr.Value)
			}
		})
	}
}

func TestEnumStrings(t *testing.T) {
	require.Equal(t, "ISO/IBM MFM", hfe.EncodingISOIBMMFM.String())
	require.Equal(t, "Unknown", hfe.EncodingUnknown.String())
	require.Equal(t, "Amiga DD", hfe.ModeAmigaDD.String())
	require.Equal(t, "Disabled", hfe.ModeDisable.String())
	require.Equal(t, "Single", hfe.StepSingle.String())
	require.Equal(t, "Yes", hfe.AltEncodingYes.String())
	require.Equal(t, "0x42", hfe.TrackEncoding(0x42).String())

	require.True(t, hfe.AltEncodingYes.Enabled())
	require.False(t, hfe.AltEncodingNo.Enabled())
}
