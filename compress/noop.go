package compress

import (
	"fmt"

	"github.com/arloliu/frontcode/errs"
)

// NoOpCompressor passes payloads through unchanged.
//
// It is used for format.CompressionNone, which keeps the front-coded payload readable
// as plain text inside the blob.
type NoOpCompressor struct{}

var _ Codec = (*NoOpCompressor)(nil)

// NewNoOpCompressor creates a new no-operation compressor.
func NewNoOpCompressor() NoOpCompressor {
	return NoOpCompressor{}
}

// Compress returns data as is.
//
// Note: The returned slice shares memory with the input.
func (c NoOpCompressor) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns data as is.
//
// Note: The returned slice shares memory with the input.
func (c NoOpCompressor) Decompress(data []byte) ([]byte, error) {
	return data, nil
}

// DecompressBounded returns data as is, or errs.ErrSizeLimitExceeded if it is longer
// than maxSize.
//
// Note: The returned slice shares memory with the input.
func (c NoOpCompressor) DecompressBounded(data []byte, maxSize int) ([]byte, error) {
	if len(data) > maxSize {
		return nil, fmt.Errorf("%w: %d > %d bytes", errs.ErrSizeLimitExceeded, len(data), maxSize)
	}

	return data, nil
}
