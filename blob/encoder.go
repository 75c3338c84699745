package blob

import (
	"fmt"

	"github.com/arloliu/frontcode/encoding"
	"github.com/arloliu/frontcode/errs"
	"github.com/arloliu/frontcode/format"
	"github.com/arloliu/frontcode/internal/hash"
	"github.com/arloliu/frontcode/internal/options"
	"github.com/arloliu/frontcode/internal/pool"
	"github.com/arloliu/frontcode/section"
)

// Encoder turns corpora into blobs.
//
// Note: The Encoder is NOT thread-safe. It may be reused for several corpora in sequence.
type Encoder struct {
	*EncoderConfig
}

// NewEncoder creates a new blob Encoder.
//
// Parameters:
//   - opts: Optional configuration (encoding, compression, endianness, rune alignment)
//
// Returns:
//   - *Encoder: New encoder instance
//   - error: Configuration error if an invalid option was provided
func NewEncoder(opts ...EncoderOption) (*Encoder, error) {
	config := newEncoderConfig()
	if err := options.Apply(config, opts...); err != nil {
		return nil, err
	}

	if err := config.setCodec(); err != nil {
		return nil, err
	}

	return &Encoder{EncoderConfig: config}, nil
}

// Encode splits corpus into lines and packs them into a new blob.
//
// Lines are split on "\n" and "\r\n" (see encoding.SplitLines). An empty corpus
// produces a valid blob with zero lines.
func (e *Encoder) Encode(corpus string) (Blob, error) {
	lines := encoding.SplitLines(corpus)
	if uint64(len(lines)) > section.MaxLineCount {
		return Blob{}, fmt.Errorf("%w: %d", errs.ErrTooManyLines, len(lines))
	}

	var payload []byte
	switch e.Encoding() { //nolint: exhaustive
	case format.TypeFront:
		fe := encoding.NewFrontEncoder(encoding.WithRuneAlignedPrefixes(e.runeAligned))
		defer fe.Reset()

		fe.WriteSlice(lines)
		payload = fe.Bytes()
	default:
		buf := pool.GetEncodeBuffer()
		defer pool.PutEncodeBuffer(buf)

		buf.B = encoding.AppendLines(buf.B, lines)
		payload = buf.Bytes()
	}

	if uint64(len(payload)) > section.MaxPayloadSize {
		return Blob{}, fmt.Errorf("%w: %d bytes", errs.ErrPayloadTooLarge, len(payload))
	}

	header := *e.header
	header.LineCount = uint32(len(lines))      //nolint: gosec
	header.PayloadSize = uint32(len(payload)) //nolint: gosec
	header.Checksum = hash.Checksum(payload)

	compressed, err := e.codec.Compress(payload)
	if err != nil {
		return Blob{}, fmt.Errorf("failed to compress payload: %w", err)
	}

	// copy out of the pooled buffers before they are released
	data := make([]byte, 0, section.HeaderSize+len(compressed))
	data = header.AppendTo(data)
	data = append(data, compressed...)

	return Blob{
		header:       header,
		data:         data,
		originalSize: len(corpus),
	}, nil
}
