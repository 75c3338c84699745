package blob

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/frontcode/errs"
	"github.com/arloliu/frontcode/format"
)

func TestParseConfig(t *testing.T) {
	cfg, err := ParseConfig([]byte(`
encoding: raw
compression: LZ4
byte_order: big
rune_aligned: true
`))
	require.NoError(t, err)
	require.Equal(t, Config{
		Encoding:    format.TypeRaw,
		Compression: format.CompressionLZ4,
		ByteOrder:   "big",
		RuneAligned: true,
	}, cfg)

	encoder, err := NewEncoderFromConfig(cfg)
	require.NoError(t, err)
	require.Equal(t, format.TypeRaw, encoder.Encoding())
	require.Equal(t, format.CompressionLZ4, encoder.Compression())
	require.True(t, encoder.IsBigEndian())
	require.True(t, encoder.RuneAligned())
}

func TestParseConfig_Defaults(t *testing.T) {
	cfg, err := ParseConfig(nil)
	require.NoError(t, err)
	require.Equal(t, DefaultConfig(), cfg)

	cfg, err = ParseConfig([]byte("compression: s2\n"))
	require.NoError(t, err)
	require.Equal(t, format.TypeFront, cfg.Encoding)
	require.Equal(t, format.CompressionS2, cfg.Compression)
	require.Equal(t, "little", cfg.ByteOrder)

	// a key without a value keeps its default instead of disabling compression
	cfg, err = ParseConfig([]byte("compression:\nencoding:\n"))
	require.NoError(t, err)
	require.Equal(t, format.CompressionZstd, cfg.Compression)
	require.Equal(t, format.TypeFront, cfg.Encoding)
}

func TestParseConfig_Errors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"unknown encoding", "encoding: delta\n"},
		{"unknown compression", "compression: brotli\n"},
		{"empty compression", "compression: \"\"\n"},
		{"empty encoding", "encoding: ''\n"},
		{"unknown key", "level: 3\n"},
		{"not a mapping", "- front\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig([]byte(tt.yaml))
			require.Error(t, err)
		})
	}

	_, err := ParseConfig([]byte("byte_order: middle\n"))
	require.ErrorIs(t, err, errs.ErrUnsupportedByteOrder)
}

func TestConfig_Marshal(t *testing.T) {
	cfg := Config{
		Encoding:    format.TypeFront,
		Compression: format.CompressionNone,
		ByteOrder:   "big",
	}

	data, err := cfg.Marshal()
	require.NoError(t, err)
	require.Contains(t, string(data), "encoding: front")
	require.Contains(t, string(data), "compression: none")

	parsed, err := ParseConfig(data)
	require.NoError(t, err)
	require.Equal(t, cfg, parsed)

	_, err = Config{}.Marshal()
	require.ErrorIs(t, err, errs.ErrInvalidEncoding)
}
