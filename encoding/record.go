package encoding

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/arloliu/frontcode/errs"
	"github.com/arloliu/frontcode/prefix"
)

const (
	// Separator separates the prefix length from the suffix inside a record.
	Separator = ' '
	// Terminator ends every record and every decoded line.
	Terminator = '\n'

	// maxPrefixDigits bounds the decimal width of a prefix length on 64-bit platforms.
	maxPrefixDigits = 19
)

// Record is one front-coded line: the number of bytes shared with the previous line
// and the bytes that follow them.
type Record struct {
	PrefixLen int
	Suffix    string
}

// Len returns the length of the line the record decodes to.
func (r Record) Len() int {
	return r.PrefixLen + len(r.Suffix)
}

// AppendText appends the record in wire format, without the terminator, to dst.
func (r Record) AppendText(dst []byte) []byte {
	dst = strconv.AppendInt(dst, int64(r.PrefixLen), 10)
	dst = append(dst, Separator)

	return append(dst, r.Suffix...)
}

// String returns the record in wire format without the terminator.
func (r Record) String() string {
	return string(r.AppendText(make([]byte, 0, maxPrefixDigits+1+len(r.Suffix))))
}

// ParseRecord parses a single record, without its terminator.
//
// The text is split on the first space. The left field must be a non-empty run of ASCII
// digits; everything after the space is the suffix, verbatim.
func ParseRecord(text string) (Record, error) {
	sep := strings.IndexByte(text, Separator)
	if sep < 0 {
		return Record{}, fmt.Errorf("%w: %w: %q", errs.ErrMalformedRecord, errs.ErrMissingSeparator, text)
	}

	field := text[:sep]
	n, ok := parsePrefixLen(field)
	if !ok {
		return Record{}, fmt.Errorf("%w: %w: %q", errs.ErrMalformedRecord, errs.ErrInvalidPrefixLength, field)
	}

	return Record{PrefixLen: n, Suffix: text[sep+1:]}, nil
}

// parsePrefixLen accepts only unsigned decimal digits. strconv.Atoi alone would also
// accept a leading sign.
func parsePrefixLen(field string) (int, bool) {
	if field == "" || len(field) > maxPrefixDigits {
		return 0, false
	}

	for i := 0; i < len(field); i++ {
		if field[i] < '0' || field[i] > '9' {
			return 0, false
		}
	}

	n, err := strconv.Atoi(field)
	if err != nil {
		return 0, false
	}

	return n, true
}

// nextRecord computes the record for line given the previous line.
func nextRecord(prev, line string, runeAligned bool) Record {
	var p int
	if runeAligned {
		p = prefix.CommonRuneLength(prev, line)
	} else {
		p = prefix.CommonLength(prev, line)
	}

	return Record{PrefixLen: p, Suffix: line[p:]}
}

// BuildRecords front-codes lines without serializing them.
//
// The first record is always compared against the empty string, so its prefix length is 0.
func BuildRecords(lines []string, runeAligned bool) []Record {
	records := make([]Record, len(lines))

	prev := ""
	for i, line := range lines {
		records[i] = nextRecord(prev, line, runeAligned)
		prev = line
	}

	return records
}
