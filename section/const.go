package section

import "math"

const (
	// Bit masks of the options word
	EndiannessMask   = 0x0002 // Mask for endianness bit (bit 1)
	ReservedBitsMask = 0x000D // Mask for reserved bits (bits 0, 2 and 3)
	MagicNumberMask  = 0xFFF0 // Mask for magic number (bits 4-15)

	// MagicFrontV1Opt is the version 1 magic number of front-coded blobs.
	MagicFrontV1Opt = 0xFC10
)

const (
	HeaderSize     = 24             // fixed header size in bytes
	MaxLineCount   = math.MaxUint32 // maximum number of lines in one blob
	MaxPayloadSize = math.MaxUint32 // maximum uncompressed payload size in bytes
)
