// Package blob packs front-coded corpora into self-describing binary blobs.
//
// A blob is a 24-byte header (see package section) followed by a payload. The payload
// holds the corpus lines either front-coded (format.TypeFront, the default) or verbatim
// (format.TypeRaw, useful as a baseline), and is compressed as a single unit with one of
// the codecs from package compress. The header records the line count, the uncompressed
// payload size and an xxHash64 checksum of the uncompressed payload, all verified on
// decode.
//
// # Encoding
//
//	encoder, err := blob.NewEncoder(
//	    blob.WithCompression(format.CompressionZstd),
//	    blob.WithRuneAlignedPrefixes(true),
//	)
//	if err != nil {
//	    return err
//	}
//	b, err := encoder.Encode(words)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("saved %.1f%%\n", b.Stats().SpaceSavings())
//
// # Decoding
//
//	decoder, err := blob.NewDecoder(b.Bytes())
//	if err != nil {
//	    return err
//	}
//	corpus, err := decoder.Decode()
//
// Decoded corpora always end every line with "\n", matching the text wire format.
//
// # Configuration
//
// Encoder options can also be loaded from YAML:
//
//	encoding: front
//	compression: lz4
//	byte_order: little
//	rune_aligned: true
//
// See ParseConfig and NewEncoderFromConfig.
//
// # Thread Safety
//
// An Encoder may be reused sequentially but is NOT safe for concurrent use. A Decoder
// is NOT thread-safe. Blob values are immutable.
package blob
