package blob

import (
	"fmt"
	"math"
	"strings"

	"github.com/arloliu/frontcode/compress"
	"github.com/arloliu/frontcode/encoding"
	"github.com/arloliu/frontcode/errs"
	"github.com/arloliu/frontcode/format"
	"github.com/arloliu/frontcode/internal/hash"
	"github.com/arloliu/frontcode/section"
)

// Decoder restores corpora from blobs.
//
// The header is parsed and validated by NewDecoder; the payload is only decompressed and
// verified when Lines or Decode is called.
//
// Note: The Decoder is NOT thread-safe.
type Decoder struct {
	data   []byte
	header section.Header
}

// NewDecoder creates a new Decoder for the given blob bytes.
//
// Returns an error wrapping errs.ErrInvalidHeaderSize or errs.ErrInvalidHeaderFlags
// if the header cannot be parsed.
func NewDecoder(data []byte) (*Decoder, error) {
	decoder := &Decoder{data: data}

	if err := decoder.header.Parse(data); err != nil {
		return nil, fmt.Errorf("failed to parse blob header: %w", err)
	}

	return decoder, nil
}

// Header returns a copy of the parsed header.
func (d *Decoder) Header() section.Header {
	return d.header
}

// Lines decodes the blob into its lines.
func (d *Decoder) Lines() ([]string, error) {
	payload, err := d.payload()
	if err != nil {
		return nil, err
	}

	var lines []string
	switch d.header.Flag.GetEncoding() { //nolint: exhaustive
	case format.TypeFront:
		lines, err = encoding.DecodeLines(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to decode payload: %w", err)
		}
	default:
		lines = splitRawLines(payload)
	}

	if uint64(len(lines)) != uint64(d.header.LineCount) {
		return nil, fmt.Errorf("%w: header says %d, payload has %d",
			errs.ErrLineCountMismatch, d.header.LineCount, len(lines))
	}

	return lines, nil
}

// Decode decodes the blob into a corpus with "\n" after every line.
func (d *Decoder) Decode() (string, error) {
	lines, err := d.Lines()
	if err != nil {
		return "", err
	}

	return encoding.JoinLines(lines), nil
}

// payload decompresses the payload and verifies its size and checksum.
//
// The header's PayloadSize bounds decompression, so a corrupted or crafted blob cannot
// make the codec allocate more than the header announces.
func (d *Decoder) payload() (string, error) {
	codec, err := compress.GetCodec(d.header.Flag.GetCompression())
	if err != nil {
		return "", err
	}

	if uint64(d.header.PayloadSize) > uint64(math.MaxInt) {
		return "", fmt.Errorf("%w: %d bytes", errs.ErrPayloadTooLarge, d.header.PayloadSize)
	}

	raw, err := codec.DecompressBounded(d.data[section.HeaderSize:], int(d.header.PayloadSize))
	if err != nil {
		return "", fmt.Errorf("failed to decompress payload: %w", err)
	}

	if uint64(len(raw)) != uint64(d.header.PayloadSize) {
		return "", fmt.Errorf("%w: header says %d bytes, got %d",
			errs.ErrPayloadSizeMismatch, d.header.PayloadSize, len(raw))
	}

	if sum := hash.Checksum(raw); sum != d.header.Checksum {
		return "", fmt.Errorf("%w: header has %#016x, payload hashes to %#016x",
			errs.ErrChecksumMismatch, d.header.Checksum, sum)
	}

	return string(raw), nil
}

// splitRawLines splits a raw payload, in which every line is followed by '\n'.
// Unlike encoding.SplitLines it keeps carriage returns, which are line content here.
func splitRawLines(payload string) []string {
	if payload == "" {
		return nil
	}

	return strings.Split(strings.TrimSuffix(payload, "\n"), "\n")
}
