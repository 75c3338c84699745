// Package format declares the payload encoding and compression identifiers stored in blob headers.
package format

import (
	"fmt"
	"strings"
)

type (
	EncodingType    uint8
	CompressionType uint8
)

const (
	TypeRaw   EncodingType = 0x1 // TypeRaw stores lines verbatim, one per line.
	TypeFront EncodingType = 0x2 // TypeFront stores front-coded records.

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

func (e EncodingType) String() string {
	switch e {
	case TypeRaw:
		return "Raw"
	case TypeFront:
		return "Front"
	default:
		return "Unknown"
	}
}

// IsValid reports whether e is a known encoding type.
func (e EncodingType) IsValid() bool {
	return e == TypeRaw || e == TypeFront
}

// ParseEncodingType parses a case-insensitive encoding name such as "front" or "raw".
func ParseEncodingType(s string) (EncodingType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "raw":
		return TypeRaw, nil
	case "front":
		return TypeFront, nil
	default:
		return 0, fmt.Errorf("unknown encoding type %q", s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (e EncodingType) MarshalText() ([]byte, error) {
	if !e.IsValid() {
		return nil, fmt.Errorf("unknown encoding type %d", uint8(e))
	}

	return []byte(strings.ToLower(e.String())), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (e *EncodingType) UnmarshalText(text []byte) error {
	parsed, err := ParseEncodingType(string(text))
	if err != nil {
		return err
	}
	*e = parsed

	return nil
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// IsValid reports whether c is a known compression type.
func (c CompressionType) IsValid() bool {
	return c >= CompressionNone && c <= CompressionLZ4
}

// ParseCompressionType parses a case-insensitive compression name such as "zstd" or "lz4".
// Disabling compression takes an explicit "none"; an empty name is rejected.
func ParseCompressionType(s string) (CompressionType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none":
		return CompressionNone, nil
	case "zstd":
		return CompressionZstd, nil
	case "s2":
		return CompressionS2, nil
	case "lz4":
		return CompressionLZ4, nil
	default:
		return 0, fmt.Errorf("unknown compression type %q", s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (c CompressionType) MarshalText() ([]byte, error) {
	if !c.IsValid() {
		return nil, fmt.Errorf("unknown compression type %d", uint8(c))
	}

	return []byte(strings.ToLower(c.String())), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *CompressionType) UnmarshalText(text []byte) error {
	parsed, err := ParseCompressionType(string(text))
	if err != nil {
		return err
	}
	*c = parsed

	return nil
}
