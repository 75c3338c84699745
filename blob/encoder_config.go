package blob

import (
	"fmt"

	"github.com/arloliu/frontcode/compress"
	"github.com/arloliu/frontcode/errs"
	"github.com/arloliu/frontcode/format"
	"github.com/arloliu/frontcode/internal/options"
	"github.com/arloliu/frontcode/section"
)

// EncoderConfig holds the blob encoder settings applied by EncoderOptions.
type EncoderConfig struct {
	header      *section.Header
	codec       compress.Codec
	runeAligned bool
}

// newEncoderConfig creates an EncoderConfig with the default header flags.
func newEncoderConfig() *EncoderConfig {
	return &EncoderConfig{
		header: section.NewHeader(),
	}
}

func (c *EncoderConfig) setEncoding(enc format.EncodingType) error {
	if !enc.IsValid() {
		return fmt.Errorf("%w: %v", errs.ErrInvalidEncoding, enc)
	}
	c.header.Flag.SetEncoding(enc)

	return nil
}

func (c *EncoderConfig) setCompression(comp format.CompressionType) error {
	if !comp.IsValid() {
		return fmt.Errorf("%w: %v", errs.ErrInvalidCompression, comp)
	}
	c.header.Flag.SetCompression(comp)

	return nil
}

func (c *EncoderConfig) setEndianess(endiness endianness) {
	if endiness == bigEndianOpt {
		c.header.Flag.WithBigEndian()
	} else {
		c.header.Flag.WithLittleEndian()
	}
}

// setCodec creates the payload codec from the configured compression type.
func (c *EncoderConfig) setCodec() error {
	codec, err := compress.CreateCodec(c.header.Flag.GetCompression(), "payload")
	if err != nil {
		return fmt.Errorf("failed to create payload codec: %w", err)
	}
	c.codec = codec

	return nil
}

// Encoding returns the configured payload encoding.
func (c *EncoderConfig) Encoding() format.EncodingType {
	return c.header.Flag.GetEncoding()
}

// Compression returns the configured payload compression.
func (c *EncoderConfig) Compression() format.CompressionType {
	return c.header.Flag.GetCompression()
}

// IsBigEndian reports whether header fields are written big-endian.
func (c *EncoderConfig) IsBigEndian() bool {
	return c.header.Flag.IsBigEndian()
}

// RuneAligned reports whether front coding keeps UTF-8 sequences intact.
func (c *EncoderConfig) RuneAligned() bool {
	return c.runeAligned
}

// endianness represents the byte order configuration option.
type endianness uint8

const (
	littleEndianOpt endianness = iota
	bigEndianOpt
)

// EncoderOption is a functional option for configuring the blob Encoder.
type EncoderOption = options.Option[*EncoderConfig]

// WithEncoding sets how lines are stored in the payload.
// Valid values are format.TypeFront (default) and format.TypeRaw.
func WithEncoding(enc format.EncodingType) EncoderOption {
	return options.New(func(c *EncoderConfig) error {
		return c.setEncoding(enc)
	})
}

// WithCompression sets the payload compression.
// Available compression types: format.CompressionZstd (default), format.CompressionS2,
// format.CompressionLZ4, format.CompressionNone.
func WithCompression(comp format.CompressionType) EncoderOption {
	return options.New(func(c *EncoderConfig) error {
		return c.setCompression(comp)
	})
}

// WithLittleEndian writes header fields little-endian. It is the default option.
func WithLittleEndian() EncoderOption {
	return options.NoError(func(c *EncoderConfig) {
		c.setEndianess(littleEndianOpt)
	})
}

// WithBigEndian writes header fields big-endian.
// It rarely needs to be used unless interoperability with big-endian readers is required.
func WithBigEndian() EncoderOption {
	return options.NoError(func(c *EncoderConfig) {
		c.setEndianess(bigEndianOpt)
	})
}

// WithRuneAlignedPrefixes keeps shared prefixes on UTF-8 rune boundaries.
// It only affects format.TypeFront payloads. Default is false.
func WithRuneAlignedPrefixes(enabled bool) EncoderOption {
	return options.NoError(func(c *EncoderConfig) {
		c.runeAligned = enabled
	})
}
