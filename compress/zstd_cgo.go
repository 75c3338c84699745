//go:build cgo && gozstd

package compress

import (
	"fmt"

	"github.com/klauspost/compress/zstd"
	"github.com/valyala/gozstd"

	"github.com/arloliu/frontcode/errs"
)

const gozstdLevel = 3

// Compress compresses the input data using libzstd.
func (c ZstdCompressor) Compress(data []byte) ([]byte, error) {
	return gozstd.CompressLevel(nil, data, gozstdLevel), nil
}

// Decompress decompresses Zstd-compressed data using libzstd.
func (c ZstdCompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	decompressed, err := gozstd.Decompress(nil, data)
	if err != nil {
		return nil, fmt.Errorf("zstd decompression failed: %w", err)
	}

	return decompressed, nil
}

// DecompressBounded decompresses Zstd-compressed data after checking the content size
// declared in the frame header against maxSize.
//
// libzstd cannot cap its output, so a frame without a declared content size is decoded
// first and checked afterwards.
func (c ZstdCompressor) DecompressBounded(data []byte, maxSize int) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	var header zstd.Header
	if err := header.Decode(data); err != nil {
		return nil, fmt.Errorf("zstd decompression failed: %w", err)
	}
	if header.HasFCS && header.FrameContentSize > uint64(maxSize) {
		return nil, fmt.Errorf("%w: zstd frame declares %d > %d bytes",
			errs.ErrSizeLimitExceeded, header.FrameContentSize, maxSize)
	}

	decompressed, err := gozstd.Decompress(make([]byte, 0, maxSize), data)
	if err != nil {
		return nil, fmt.Errorf("zstd decompression failed: %w", err)
	}
	if len(decompressed) > maxSize {
		return nil, fmt.Errorf("%w: zstd frame decodes to %d > %d bytes",
			errs.ErrSizeLimitExceeded, len(decompressed), maxSize)
	}

	return decompressed, nil
}
