// Package endian provides the byte order engines used to read and write blob headers.
//
// An EndianEngine combines binary.ByteOrder and binary.AppendByteOrder, so the same value
// can both decode fixed-size fields in place and append them to a growing buffer:
//
//	engine := endian.GetLittleEndianEngine()
//	buf = engine.AppendUint64(buf, checksum)
//
// The returned engines are the immutable binary.LittleEndian and binary.BigEndian values
// and are safe for concurrent use.
package endian

import (
	"encoding/binary"
	"fmt"
	"strings"
)

// EndianEngine combines ByteOrder and AppendByteOrder from encoding/binary.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// IsBigEndian reports whether engine writes the most significant byte first.
func IsBigEndian(engine EndianEngine) bool {
	return engine == binary.BigEndian
}

// ParseEngine returns the engine named by s, which is "little" or "big" (case-insensitive).
// An empty name selects little-endian.
func ParseEngine(s string) (EndianEngine, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "little", "little_endian", "le":
		return GetLittleEndianEngine(), nil
	case "big", "big_endian", "be":
		return GetBigEndianEngine(), nil
	default:
		return nil, fmt.Errorf("unknown byte order %q", s)
	}
}
