package blob

import (
	"github.com/arloliu/frontcode/compress"
	"github.com/arloliu/frontcode/section"
)

// Blob is an encoded corpus: a header followed by the (possibly compressed) payload.
type Blob struct {
	header       section.Header
	data         []byte
	originalSize int
}

// Bytes returns the serialized blob, header included.
//
// The returned slice is shared with the Blob; do not modify it.
func (b Blob) Bytes() []byte {
	return b.data
}

// Header returns a copy of the blob header.
func (b Blob) Header() section.Header {
	return b.header
}

// LineCount returns the number of lines stored in the blob.
func (b Blob) LineCount() int {
	return int(b.header.LineCount)
}

// Len returns the serialized size of the blob in bytes.
func (b Blob) Len() int {
	return len(b.data)
}

// Stats reports the size of the corpus at each encoding stage.
//
// OriginalSize is only known for blobs produced by an Encoder.
func (b Blob) Stats() compress.CompressionStats {
	return compress.CompressionStats{
		Algorithm:      b.header.Flag.GetCompression(),
		OriginalSize:   int64(b.originalSize),
		EncodedSize:    int64(b.header.PayloadSize),
		CompressedSize: int64(len(b.data) - section.HeaderSize),
	}
}
