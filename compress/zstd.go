package compress

// ZstdCompressor provides Zstandard compression.
//
// Zstd gives the best ratio of the built-in codecs on front-coded text and is the
// default for blobs. The implementation is selected at build time:
//   - default: github.com/klauspost/compress/zstd (pure Go, pooled encoders/decoders)
//   - cgo with the "gozstd" build tag: github.com/valyala/gozstd (libzstd)
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
//
// Example:
//
//	compressor := NewZstdCompressor()
//	compressed, err := compressor.Compress(payload)
//	if err != nil {
//		return err
//	}
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
