package section

import (
	"fmt"

	"github.com/arloliu/frontcode/endian"
	"github.com/arloliu/frontcode/errs"
)

// Header is the fixed-size header in front of every blob payload.
type Header struct {
	// Flag packs the magic number, byte order, encoding and compression.
	Flag Flag // 4 bytes, offset 0-3
	// LineCount is the number of lines stored in the payload.
	LineCount uint32 // 4 bytes, offset 4-7
	// PayloadSize is the size of the payload before compression.
	PayloadSize uint32 // 4 bytes, offset 8-11
	// Reserved for future use, must be zero.
	Reserved [4]byte // offset 12-15
	// Checksum is the xxHash64 of the uncompressed payload.
	Checksum uint64 // 8 bytes, offset 16-23
}

// NewHeader creates a Header with the default Flag and no lines.
func NewHeader() *Header {
	return &Header{
		Flag: NewFlag(),
	}
}

// Parse parses the header from a byte slice.
// It returns an error if the data is shorter than HeaderSize or if the flags are invalid.
// Bytes after HeaderSize are ignored.
func (h *Header) Parse(data []byte) error {
	if len(data) < HeaderSize {
		return fmt.Errorf("%w: got %d bytes, want %d", errs.ErrInvalidHeaderSize, len(data), HeaderSize)
	}

	// the options word is little-endian regardless of the endianness bit
	h.Flag.Options = uint16(data[0]) | (uint16(data[1]) << 8)
	h.Flag.Encoding = data[2]
	h.Flag.Compression = data[3]

	if err := h.Flag.Validate(); err != nil {
		return err
	}

	engine := h.GetEndianEngine()

	h.LineCount = engine.Uint32(data[4:8])
	h.PayloadSize = engine.Uint32(data[8:12])
	copy(h.Reserved[:], data[12:16])
	h.Checksum = engine.Uint64(data[16:24])

	if h.Reserved != [4]byte{} {
		return errs.ErrInvalidHeaderFlags
	}

	return nil
}

// Bytes serializes the header into a new HeaderSize byte slice.
func (h *Header) Bytes() []byte {
	return h.AppendTo(make([]byte, 0, HeaderSize))
}

// AppendTo appends the serialized header to dst.
func (h *Header) AppendTo(dst []byte) []byte {
	engine := h.GetEndianEngine()

	dst = append(dst, byte(h.Flag.Options), byte(h.Flag.Options>>8))
	dst = append(dst, h.Flag.Encoding, h.Flag.Compression)
	dst = engine.AppendUint32(dst, h.LineCount)
	dst = engine.AppendUint32(dst, h.PayloadSize)
	dst = append(dst, h.Reserved[:]...)
	dst = engine.AppendUint64(dst, h.Checksum)

	return dst
}

// GetEndianEngine returns the engine matching the header's endianness flag.
func (h *Header) GetEndianEngine() endian.EndianEngine {
	if h.Flag.IsLittleEndian() {
		return endian.GetLittleEndianEngine()
	}

	return endian.GetBigEndianEngine()
}
