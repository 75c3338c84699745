package encoding

import (
	"github.com/arloliu/frontcode/internal/options"
	"github.com/arloliu/frontcode/internal/pool"
)

// FrontEncoder front-codes lines into the text wire format.
//
// Each call to Write compares the line with the previously written one and appends a
// "<prefixLength> <suffix>\n" record to a pooled buffer.
//
// Note: The FrontEncoder is NOT thread-safe.
//
// Note: After calling Reset, the encoder must not be used again.
type FrontEncoder struct {
	buf         *pool.ByteBuffer
	prev        string
	count       int
	runeAligned bool
}

// FrontOption configures a FrontEncoder.
type FrontOption = options.Option[*FrontEncoder]

// WithRuneAlignedPrefixes makes the encoder shorten shared prefixes that would end inside
// a multi-byte UTF-8 sequence, so every suffix of valid UTF-8 input is itself valid UTF-8.
// Decoding is unaffected. Default is false (byte-wise prefixes).
func WithRuneAlignedPrefixes(enabled bool) FrontOption {
	return options.NoError(func(e *FrontEncoder) {
		e.runeAligned = enabled
	})
}

// NewFrontEncoder creates a new FrontEncoder backed by a pooled buffer.
//
// Parameters:
//   - opts: Optional configuration (see WithRuneAlignedPrefixes)
//
// Returns:
//   - *FrontEncoder: A new encoder ready for Write calls
func NewFrontEncoder(opts ...FrontOption) *FrontEncoder {
	e := &FrontEncoder{
		buf: pool.GetEncodeBuffer(),
	}
	// FrontOptions cannot fail.
	_ = options.Apply(e, opts...)

	return e
}

// Write encodes one line and returns the record written for it.
func (e *FrontEncoder) Write(line string) Record {
	r := nextRecord(e.prev, line, e.runeAligned)

	e.buf.Grow(maxPrefixDigits + 2 + len(r.Suffix))
	e.buf.B = r.AppendText(e.buf.B)
	e.buf.B = append(e.buf.B, Terminator)

	e.prev = line
	e.count++

	return r
}

// WriteSlice encodes lines in order.
func (e *FrontEncoder) WriteSlice(lines []string) {
	size := 0
	for _, line := range lines {
		size += len(line) + 3
	}
	e.buf.Grow(size)

	for _, line := range lines {
		e.Write(line)
	}
}

// Bytes returns the encoded records.
//
// The returned slice shares the encoder's buffer and is invalid after Reset.
func (e *FrontEncoder) Bytes() []byte {
	return e.buf.Bytes()
}

// String returns a copy of the encoded records.
func (e *FrontEncoder) String() string {
	return e.buf.String()
}

// Len returns the number of records written.
func (e *FrontEncoder) Len() int {
	return e.count
}

// Size returns the number of bytes written.
func (e *FrontEncoder) Size() int {
	return e.buf.Len()
}

// Reset releases the buffer back to the pool.
func (e *FrontEncoder) Reset() {
	if e.buf != nil {
		pool.PutEncodeBuffer(e.buf)
		e.buf = nil
	}
	e.prev = ""
	e.count = 0
}
