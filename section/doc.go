// Package section defines the fixed-size header of frontcode blobs.
//
// # Blob Structure
//
//	┌─────────────────────────────────────────────────────────┐
//	│ Header (24 bytes, fixed)                                │
//	├─────────────────────────────────────────────────────────┤
//	│ Payload (variable)                                      │
//	│  - front-coded records or raw lines                     │
//	│  - optionally compressed as a single unit               │
//	└─────────────────────────────────────────────────────────┘
//
// # Header Format
//
//	Bytes  | Field        | Type   | Description
//	-------|--------------|--------|------------------------------------------
//	0-1    | Options      | uint16 | Magic number and option bits (always LE)
//	2      | Encoding     | uint8  | format.EncodingType of the payload
//	3      | Compression  | uint8  | format.CompressionType of the payload
//	4-7    | LineCount    | uint32 | Number of lines in the payload
//	8-11   | PayloadSize  | uint32 | Uncompressed payload size in bytes
//	12-15  | Reserved     | uint32 | Must be zero
//	16-23  | Checksum     | uint64 | xxHash64 of the uncompressed payload
//
// # Options Word
//
//	Bit 0:     reserved, must be 0
//	Bit 1:     endianness (0=little-endian, 1=big-endian)
//	Bits 2-3:  reserved, must be 0
//	Bits 4-15: magic number 0xFC1 (Options & 0xFFF0 == 0xFC10)
//
// The options word is always little-endian so the byte order of the remaining fields can
// be determined before reading them.
package section
