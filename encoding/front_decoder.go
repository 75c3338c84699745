package encoding

import (
	"fmt"
	"iter"
	"strings"

	"github.com/arloliu/frontcode/errs"
)

// FrontDecoder rebuilds lines from front-coded records.
//
// The decoder carries the last rebuilt line forward: every record takes its prefix from
// that line, so a record may only reference bytes that were actually decoded.
//
// Note: The FrontDecoder is NOT thread-safe and is NOT reusable.
type FrontDecoder struct {
	data  string
	pos   int
	index int
	prev  string
	rec   Record
	err   error
}

// NewFrontDecoder creates a decoder over serialized records.
func NewFrontDecoder(data string) *FrontDecoder {
	return &FrontDecoder{data: data}
}

// Next decodes the next line.
//
// It returns false when all records are consumed or a record is malformed; call Err to
// tell the two apart. A trailing terminator after the last record is optional.
func (d *FrontDecoder) Next() (string, bool) {
	if d.err != nil || d.pos >= len(d.data) {
		return "", false
	}

	rest := d.data[d.pos:]
	text := rest
	if end := strings.IndexByte(rest, Terminator); end >= 0 {
		text = rest[:end]
		d.pos += end + 1
	} else {
		d.pos = len(d.data)
	}

	rec, err := ParseRecord(text)
	if err != nil {
		d.err = fmt.Errorf("record %d: %w", d.index, err)
		return "", false
	}

	if rec.PrefixLen > len(d.prev) {
		d.err = fmt.Errorf("record %d: %w: %w: prefix length %d, previous line length %d",
			d.index, errs.ErrMalformedRecord, errs.ErrPrefixOutOfRange, rec.PrefixLen, len(d.prev))

		return "", false
	}

	line := d.prev[:rec.PrefixLen] + rec.Suffix

	d.prev = line
	d.rec = rec
	d.index++

	return line, true
}

// Err returns the first error encountered by Next, if any.
func (d *FrontDecoder) Err() error {
	return d.err
}

// Record returns the record behind the line most recently returned by Next.
func (d *FrontDecoder) Record() Record {
	return d.rec
}

// Index returns the number of lines decoded so far.
func (d *FrontDecoder) Index() int {
	return d.index
}

// All returns an iterator over the zero-based index and content of each remaining line.
// Iteration stops at the first malformed record; check Err afterwards.
//
// Example:
//
//	dec := encoding.NewFrontDecoder(data)
//	for i, line := range dec.All() {
//	    fmt.Println(i, line)
//	}
//	if err := dec.Err(); err != nil {
//	    return err
//	}
func (d *FrontDecoder) All() iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		for line, ok := d.Next(); ok; line, ok = d.Next() {
			if !yield(d.index-1, line) {
				return
			}
		}
	}
}

// DecodeLines decodes all records in data.
func DecodeLines(data string) ([]string, error) {
	if data == "" {
		return nil, nil
	}

	lines := make([]string, 0, strings.Count(data, "\n")+1)

	dec := NewFrontDecoder(data)
	for line, ok := dec.Next(); ok; line, ok = dec.Next() {
		lines = append(lines, line)
	}

	if err := dec.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}
