package compress

import (
	"fmt"

	"github.com/arloliu/frontcode/format"
)

// Compressor compresses a complete payload.
//
// Memory management:
//   - The input slice is not modified
//   - The returned slice is owned by the caller unless documented otherwise (NoOpCompressor)
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores a payload produced by the matching Compressor.
//
// It returns an error if the data is corrupted or was produced by a different algorithm.
//
// DecompressBounded is Decompress for callers that know the decompressed size, such as a
// blob decoder reading it from the header. It never allocates more than maxSize bytes for
// the output and fails with errs.ErrSizeLimitExceeded if the data decodes to more.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
	DecompressBounded(data []byte, maxSize int) ([]byte, error)
}

// Codec combines both compression and decompression capabilities.
type Codec interface {
	Compressor
	Decompressor
}

// CompressionStats describes how much space each stage of blob encoding saved.
type CompressionStats struct {
	// Algorithm identifies the second-stage compression algorithm.
	Algorithm format.CompressionType

	// OriginalSize is the size of the corpus before encoding.
	OriginalSize int64

	// EncodedSize is the size of the payload after front coding (or raw framing).
	EncodedSize int64

	// CompressedSize is the size of the payload after compression.
	CompressedSize int64
}

// CompressionRatio returns CompressedSize / OriginalSize.
//
// Values below 1.0 mean the blob payload is smaller than the corpus.
// Returns 0.0 when the original size is zero.
func (s CompressionStats) CompressionRatio() float64 {
	if s.OriginalSize == 0 {
		return 0.0
	}

	return float64(s.CompressedSize) / float64(s.OriginalSize)
}

// EncodingRatio returns EncodedSize / OriginalSize, the effect of front coding alone.
//
// Returns 0.0 when the original size is zero.
func (s CompressionStats) EncodingRatio() float64 {
	if s.OriginalSize == 0 {
		return 0.0
	}

	return float64(s.EncodedSize) / float64(s.OriginalSize)
}

// SpaceSavings returns the overall space savings as a percentage.
func (s CompressionStats) SpaceSavings() float64 {
	return (1.0 - s.CompressionRatio()) * 100.0
}

// CreateCodec creates a Codec for the specified compression type.
//
// Parameters:
//   - compressionType: Type of compression (None, Zstd, S2, or LZ4)
//   - target: Description of target usage (for error messages)
//
// Returns:
//   - Codec: Codec instance for the specified type
//   - error: Invalid compression type error
func CreateCodec(compressionType format.CompressionType, target string) (Codec, error) {
	switch compressionType {
	case format.CompressionNone:
		return NewNoOpCompressor(), nil
	case format.CompressionZstd:
		return NewZstdCompressor(), nil
	case format.CompressionS2:
		return NewS2Compressor(), nil
	case format.CompressionLZ4:
		return NewLZ4Compressor(), nil
	default:
		return nil, fmt.Errorf("invalid %s compression: %s", target, compressionType)
	}
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec retrieves the shared built-in Codec for the specified compression type.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("unsupported compression type: %s", compressionType)
}
