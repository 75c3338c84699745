package section

import (
	"testing"

	"github.com/arloliu/frontcode/endian"
	"github.com/arloliu/frontcode/errs"
	"github.com/arloliu/frontcode/format"
	"github.com/stretchr/testify/require"
)

func TestNewHeader(t *testing.T) {
	header := NewHeader()

	require.True(t, header.Flag.IsLittleEndian())
	require.Equal(t, uint16(MagicFrontV1Opt), header.Flag.GetMagicNumber())
	require.Equal(t, format.TypeFront, header.Flag.GetEncoding())
	require.Equal(t, format.CompressionZstd, header.Flag.GetCompression())
	require.Zero(t, header.LineCount)
	require.NoError(t, header.Flag.Validate())
}

func TestHeader_BytesAndParse(t *testing.T) {
	for _, bigEndian := range []bool{false, true} {
		header := NewHeader()
		if bigEndian {
			header.Flag.WithBigEndian()
		}
		header.Flag.SetEncoding(format.TypeRaw)
		header.Flag.SetCompression(format.CompressionLZ4)
		header.LineCount = 3
		header.PayloadSize = 27
		header.Checksum = 0x0102030405060708

		data := header.Bytes()
		require.Len(t, data, HeaderSize)

		var parsed Header
		require.NoError(t, parsed.Parse(data))
		require.Equal(t, *header, parsed)
		require.Equal(t, bigEndian, endian.IsBigEndian(parsed.GetEndianEngine()))
	}
}

func TestHeader_Layout(t *testing.T) {
	header := NewHeader()
	header.Flag.WithBigEndian()
	header.LineCount = 1
	header.PayloadSize = 8
	header.Checksum = 0xAA

	data := header.Bytes()

	// options word stays little-endian: 0xFC10 | 0x0002
	require.Equal(t, []byte{0x12, 0xFC}, data[0:2])
	require.Equal(t, byte(format.TypeFront), data[2])
	require.Equal(t, byte(format.CompressionZstd), data[3])
	require.Equal(t, []byte{0, 0, 0, 1}, data[4:8])
	require.Equal(t, []byte{0, 0, 0, 8}, data[8:12])
	require.Equal(t, []byte{0, 0, 0, 0}, data[12:16])
	require.Equal(t, []byte{0, 0, 0, 0, 0, 0, 0, 0xAA}, data[16:24])
}

func TestHeader_ParseErrors(t *testing.T) {
	valid := NewHeader().Bytes()

	t.Run("too short", func(t *testing.T) {
		var h Header
		require.ErrorIs(t, h.Parse(valid[:HeaderSize-1]), errs.ErrInvalidHeaderSize)
		require.ErrorIs(t, h.Parse(nil), errs.ErrInvalidHeaderSize)
	})

	t.Run("trailing payload is ignored", func(t *testing.T) {
		var h Header
		require.NoError(t, h.Parse(append(append([]byte{}, valid...), "0 apple\n"...)))
	})

	corrupt := func(index int, value byte) []byte {
		data := append([]byte{}, valid...)
		data[index] = value

		return data
	}

	tests := []struct {
		name string
		data []byte
	}{
		{"bad magic", corrupt(1, 0xEB)},
		{"reserved option bit", corrupt(0, 0x11)},
		{"unknown encoding", corrupt(2, 0x7)},
		{"zero compression", corrupt(3, 0x0)},
		{"reserved field", corrupt(13, 0x1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var h Header
			require.ErrorIs(t, h.Parse(tt.data), errs.ErrInvalidHeaderFlags)
		})
	}
}

func TestFlag_Endianness(t *testing.T) {
	flag := NewFlag()
	require.True(t, flag.IsLittleEndian())

	flag.WithBigEndian()
	require.True(t, flag.IsBigEndian())
	require.False(t, flag.IsLittleEndian())
	require.NoError(t, flag.Validate())

	flag.WithLittleEndian()
	require.True(t, flag.IsLittleEndian())
	require.Equal(t, uint16(MagicFrontV1Opt), flag.Options)
}
