package hfe_test

import (
	"testing"

	"github.com/egasimus/hfedisk/internal/hfe"
	"github.com/egasimus/hfedisk/internal/hfe/hfetest"
	"github.com/stretchr/testify/require"
)

func TestReadHeader(t *testing.T) {
	want := hfetest.DefaultHeader()
	want.Tracks = 80
	want.Mode = hfe.ModeAmigaDD
	want.Encoding = hfe.EncodingAmigaMFM
	want.Side1AltEncoding = hfe.AltEncodingYes
	want.Side1Encoding = hfe.EncodingISOIBMFM
	want.Bitrate = 0x1F4
	want.RPM = 0x168

	data := append(hfetest.EncodeHeader(want), 0xAA, 0xBB)

	r := hfe.NewReader(data)
	h, err := hfe.ReadHeader(r)
	require.NoError(t, err)
	require.Equal(t, want, h)
	require.Equal(t, hfe.HeaderSize, r.Offset())
	require.Equal(t, 2, r.Len())
	require.Equal(t, 512, h.TrackListByteOffset())
	require.False(t, h.WriteProtected())
	require.Contains(t, h.String(), "Interface Mode: Amiga DD (0x04)")
}

func TestReadHeaderBadMagic(t *testing.T) {
	valid := hfetest.EncodeHeader(hfetest.DefaultHeader())

	for i := 0; i < len(hfe.Signature); i++ {
		data := append([]byte(nil), valid...)
		data[i] ^= 0x20

		r := hfe.NewReader(data)
		_, err := hfe.ReadHeader(r)
		require.ErrorIs(t, err, hfe.ErrBadMagic)
		require.Equal(t, len(hfe.Signature), r.Offset(), "no field must be read after a bad signature")
	}
}

func TestReadHeaderBadMagicSkipsFields(t *testing.T) {
	// A corrupted signature followed by a short, invalid body still reports
	// the signature first.
	data := []byte("HXCPICFX\xEE")

	_, err := hfe.ReadHeader(hfe.NewReader(data))
	require.ErrorIs(t, err, hfe.ErrBadMagic)
}

func TestReadHeaderTruncated(t *testing.T) {
	valid := hfetest.EncodeHeader(hfetest.DefaultHeader())

	for n := 0; n < hfe.HeaderSize; n++ {
		_, err := hfe.ReadHeader(hfe.NewReader(valid[:n]))
		require.ErrorIs(t, err, hfe.ErrTruncatedHeader, "length %d", n)
	}
}

func TestReadHeaderInvalidEnum(t *testing.T) {
	cases := []struct {
		name  string
		off   int
		field string
	}{
		{"encoding", 11, "track encoding"},
		{"mode", 16, "interface mode"},
		{"step", 20, "step mode"},
		{"side0 alt", 21, "alternate encoding flag"},
		{"side0 encoding", 22, "track encoding"},
		{"side1 alt", 23, "alternate encoding flag"},
		{"side1 encoding", 24, "track encoding"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			data := hfetest.EncodeHeader(hfetest.DefaultHeader())
			data[tc.off] = 0x7E

			_, err := hfe.ReadHeader(hfe.NewReader(data))

			var enumErr *hfe.InvalidEnumValueError
			require.ErrorAs(t, err, &enumErr)
			require.Equal(t, tc.field, enumErr.Field)
			require.Equal(t, byte(0x7E), enumErr.Value)
		})
	}
}
