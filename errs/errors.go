// Package errs defines the sentinel errors returned by frontcode packages.
//
// Callers should match them with errors.Is, since most are wrapped with
// additional context such as the record index.
package errs

import "errors"

// Record parsing errors.
var (
	// ErrMalformedRecord is the umbrella error for any record that cannot be decoded.
	ErrMalformedRecord = errors.New("malformed record")
	// ErrMissingSeparator indicates a record without the space between prefix length and suffix.
	ErrMissingSeparator = errors.New("missing separator between prefix length and suffix")
	// ErrInvalidPrefixLength indicates a prefix length field that is not a non-negative decimal integer.
	ErrInvalidPrefixLength = errors.New("invalid prefix length")
	// ErrPrefixOutOfRange indicates a prefix length longer than the previously decoded line.
	ErrPrefixOutOfRange = errors.New("prefix length exceeds previous line")
)

// Container errors.
var (
	ErrInvalidHeaderSize    = errors.New("invalid header size")
	ErrInvalidHeaderFlags   = errors.New("invalid header flags")
	ErrTooManyLines         = errors.New("too many lines")
	ErrPayloadTooLarge      = errors.New("payload too large")
	ErrPayloadSizeMismatch  = errors.New("payload size mismatch")
	ErrSizeLimitExceeded    = errors.New("decompressed size exceeds limit")
	ErrChecksumMismatch     = errors.New("checksum mismatch")
	ErrLineCountMismatch    = errors.New("line count mismatch")
	ErrInvalidEncoding      = errors.New("invalid encoding type")
	ErrInvalidCompression   = errors.New("invalid compression type")
	ErrRoundTripMismatch    = errors.New("decoded corpus does not match original")
	ErrUnsupportedByteOrder = errors.New("unsupported byte order")
)
