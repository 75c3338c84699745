// Package compress provides the second-stage codecs applied to blob payloads.
//
// Front coding removes the prefixes that neighbouring lines share, but the remaining
// suffixes are still plain text with plenty of redundancy (repeated suffixes such as
// "ing" or "tion", repeated digits in prefix lengths). A general-purpose codec applied
// to the whole payload picks that up. The blob package applies the codec after front
// coding and before writing the header.
//
// # Supported Algorithms
//
//   - None (format.CompressionNone): payload stored as is.
//   - Zstd (format.CompressionZstd): best ratio, moderate speed. Uses
//     github.com/klauspost/compress/zstd with pooled encoders and decoders. Building with
//     the "gozstd" tag and cgo enabled switches to the libzstd binding
//     github.com/valyala/gozstd; both produce standard zstd frames.
//   - S2 (format.CompressionS2): fast with good ratio, github.com/klauspost/compress/s2.
//   - LZ4 (format.CompressionLZ4): fastest decompression, github.com/pierrec/lz4/v4 block API.
//
// # Usage
//
//	codec, err := compress.CreateCodec(format.CompressionZstd, "payload")
//	if err != nil {
//	    return err
//	}
//	compressed, err := codec.Compress(payload)
//
// # Thread Safety
//
// All codecs are stateless values backed by sync.Pool where they keep internal state,
// and are safe for concurrent use.
package compress
