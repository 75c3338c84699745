package section

import (
	"github.com/arloliu/frontcode/errs"
	"github.com/arloliu/frontcode/format"
)

// Flag is the packed configuration at the start of a blob header.
type Flag struct {
	// Options is a packed field of option bits and the magic number.
	// Bit 1 is the endianness flag, 0 means little-endian, 1 means big-endian.
	// Bits 0, 2 and 3 are reserved and must be 0.
	// Bits 4-15 are the magic number, 0xFC10 for front-coded blobs v1.
	Options uint16

	// Encoding indicates how lines are stored in the payload.
	// Valid values: TypeRaw, TypeFront
	Encoding uint8

	// Compression indicates the compression applied to the payload.
	// Valid values: CompressionNone, CompressionZstd, CompressionS2, CompressionLZ4
	Compression uint8
}

// NewFlag creates a Flag with default settings: little-endian, front-coded, zstd-compressed.
func NewFlag() Flag {
	flag := Flag{
		Options:     MagicFrontV1Opt,
		Encoding:    uint8(format.TypeFront),
		Compression: uint8(format.CompressionZstd),
	}
	flag.WithLittleEndian()

	return flag
}

// IsLittleEndian returns whether the header fields are little-endian.
func (f Flag) IsLittleEndian() bool {
	return (f.Options & EndiannessMask) == 0
}

// IsBigEndian returns whether the header fields are big-endian.
func (f Flag) IsBigEndian() bool {
	return (f.Options & EndiannessMask) != 0
}

// WithLittleEndian sets little-endian byte order.
func (f *Flag) WithLittleEndian() {
	f.Options &^= EndiannessMask
}

// WithBigEndian sets big-endian byte order.
func (f *Flag) WithBigEndian() {
	f.Options |= EndiannessMask
}

// GetMagicNumber returns the magic number from the Options field.
func (f Flag) GetMagicNumber() uint16 {
	return f.Options & MagicNumberMask
}

// SetEncoding sets the payload encoding type.
func (f *Flag) SetEncoding(encoding format.EncodingType) {
	f.Encoding = uint8(encoding)
}

// GetEncoding returns the payload encoding type.
func (f Flag) GetEncoding() format.EncodingType {
	return format.EncodingType(f.Encoding)
}

// SetCompression sets the payload compression type.
func (f *Flag) SetCompression(compression format.CompressionType) {
	f.Compression = uint8(compression)
}

// GetCompression returns the payload compression type.
func (f Flag) GetCompression() format.CompressionType {
	return format.CompressionType(f.Compression)
}

// Validate checks the magic number, reserved bits, encoding and compression.
func (f Flag) Validate() error {
	if f.GetMagicNumber() != MagicFrontV1Opt {
		return errs.ErrInvalidHeaderFlags
	}

	if (f.Options & ReservedBitsMask) != 0 {
		return errs.ErrInvalidHeaderFlags
	}

	if !f.GetEncoding().IsValid() {
		return errs.ErrInvalidHeaderFlags
	}

	if !f.GetCompression().IsValid() {
		return errs.ErrInvalidHeaderFlags
	}

	return nil
}
