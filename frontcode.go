// Package frontcode compresses sorted text corpora with front coding.
//
// Front coding stores each line as the length of the prefix it shares with the line
// before it, followed by the remaining suffix. For sorted word lists, log keys or metric
// names most of every line is shared with its predecessor, so the serialized form is
// much smaller than the input while staying plain text:
//
//	apple          0 apple
//	applesauce  => 5 sauce
//	apply          4 y
//
// # Basic Usage
//
//	encoded := frontcode.Encode("apple\napplesauce\napply\n")
//	// encoded == "0 apple\n5 sauce\n4 y\n"
//
//	decoded, err := frontcode.Decode(encoded)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := frontcode.Verify(corpus, decoded); err != nil {
//	    log.Fatal(err)
//	}
//
// Every decoded line is followed by "\n". Input lines may end with "\n" or "\r\n"; a
// final line without a terminator gets one on decode.
//
// # Package Structure
//
// This package provides convenient top-level wrappers for the most common use cases:
//
//   - prefix: shared prefix computation
//   - encoding: record model, streaming FrontEncoder and FrontDecoder
//   - blob: binary container with header, checksum and optional compression
//   - compress: Zstd, S2 and LZ4 codecs used by blob
//
// For advanced usage and fine-grained control, use those packages directly.
package frontcode

import (
	"github.com/arloliu/frontcode/blob"
	"github.com/arloliu/frontcode/encoding"
	"github.com/arloliu/frontcode/internal/pool"
	"github.com/arloliu/frontcode/prefix"
)

// CommonPrefixLength returns the number of leading bytes a and b have in common.
//
// Examples:
//
//	CommonPrefixLength("apple", "applesauce") // 5
//	CommonPrefixLength("apple", "banana")     // 0
//	CommonPrefixLength("", "abc")             // 0
func CommonPrefixLength(a, b string) int {
	return prefix.CommonLength(a, b)
}

// Encode front-codes a corpus into the text wire format.
//
// The corpus is split into lines (see encoding.SplitLines) and each line is written as
// "<prefixLength> <suffix>\n" relative to the line before it. An empty corpus encodes to
// an empty string.
//
// Parameters:
//   - corpus: Lines separated by "\n" or "\r\n"
//   - opts: Optional encoder configuration (see encoding.WithRuneAlignedPrefixes)
//
// Returns:
//   - string: The serialized records
//
// Example:
//
//	frontcode.Encode("apple\napplesauce") // "0 apple\n5 sauce\n"
func Encode(corpus string, opts ...encoding.FrontOption) string {
	if corpus == "" {
		return ""
	}

	encoder := encoding.NewFrontEncoder(opts...)
	defer encoder.Reset()

	encoder.WriteSlice(encoding.SplitLines(corpus))

	return encoder.String()
}

// Decode reconstructs a corpus from its serialized records.
//
// Each line is rebuilt from the line decoded just before it and written with a trailing
// "\n". An empty input decodes to an empty string.
//
// Returns an error wrapping errs.ErrMalformedRecord and a more specific cause
// (errs.ErrMissingSeparator, errs.ErrInvalidPrefixLength or errs.ErrPrefixOutOfRange)
// if a record cannot be decoded. No partial output is returned.
func Decode(serialized string) (string, error) {
	if serialized == "" {
		return "", nil
	}

	buf := pool.GetEncodeBuffer()
	defer pool.PutEncodeBuffer(buf)

	buf.Grow(len(serialized))

	decoder := encoding.NewFrontDecoder(serialized)
	for _, line := range decoder.All() {
		_, _ = buf.WriteString(line)
		_ = buf.WriteByte(encoding.Terminator)
	}
	if err := decoder.Err(); err != nil {
		return "", err
	}

	return buf.String(), nil
}

// EncodeOptional is Encode for an optional corpus. A nil corpus yields nil.
func EncodeOptional(corpus *string) *string {
	if corpus == nil {
		return nil
	}

	encoded := Encode(*corpus)

	return &encoded
}

// DecodeOptional is Decode for optional input. A nil input yields nil and no error.
func DecodeOptional(serialized *string) (*string, error) {
	if serialized == nil {
		return nil, nil //nolint: nilnil
	}

	decoded, err := Decode(*serialized)
	if err != nil {
		return nil, err
	}

	return &decoded, nil
}

// RoundTrip encodes corpus, decodes the result and verifies it against corpus.
//
// It returns the serialized form so callers can report its size. A corpus whose lines
// end with "\r\n", or whose last line is unterminated, does not round-trip exactly and
// yields a *MismatchError of kind MismatchLineEnding.
func RoundTrip(corpus string, opts ...encoding.FrontOption) (string, error) {
	encoded := Encode(corpus, opts...)

	decoded, err := Decode(encoded)
	if err != nil {
		return encoded, err
	}

	return encoded, Verify(corpus, decoded)
}

// NewBlobEncoder creates a binary container encoder.
//
// It uses front coding and Zstd compression unless overridden by opts.
//
// Example:
//
//	encoder, err := frontcode.NewBlobEncoder(blob.WithCompression(format.CompressionLZ4))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	b, err := encoder.Encode(corpus)
func NewBlobEncoder(opts ...blob.EncoderOption) (*blob.Encoder, error) {
	return blob.NewEncoder(opts...)
}

// NewBlobDecoder creates a decoder for a container produced by a blob encoder.
//
// The header is validated immediately; the payload is verified when decoded.
func NewBlobDecoder(data []byte) (*blob.Decoder, error) {
	return blob.NewDecoder(data)
}
