package frontcode

import (
	"fmt"

	"github.com/arloliu/frontcode/errs"
)

// MismatchKind classifies how a decoded corpus differs from the original.
type MismatchKind uint8

const (
	// MismatchLine means a line differs in content.
	MismatchLine MismatchKind = iota + 1
	// MismatchLineCount means all common lines match but one corpus has more lines.
	MismatchLineCount
	// MismatchLineEnding means the lines match but their terminators differ.
	MismatchLineEnding
)

func (k MismatchKind) String() string {
	switch k {
	case MismatchLine:
		return "line"
	case MismatchLineCount:
		return "line count"
	case MismatchLineEnding:
		return "line ending"
	default:
		return "unknown"
	}
}

// MismatchError describes the first difference between an original corpus and its
// decoded form.
//
// Line numbers are 1-based, as in editors and compiler diagnostics: the first line of a
// corpus is line 1, not index 0.
type MismatchError struct {
	Kind MismatchKind
	// Line is the 1-based number of the first differing line (MismatchLine only).
	Line     int
	Original string
	Decoded  string
	// OriginalLines and DecodedLines are the line counts of both corpora.
	OriginalLines int
	DecodedLines  int
}

func (e *MismatchError) Error() string {
	switch e.Kind {
	case MismatchLine:
		return fmt.Sprintf("%s: line %d differs: original %q, decoded %q",
			errs.ErrRoundTripMismatch, e.Line, e.Original, e.Decoded)
	case MismatchLineCount:
		return fmt.Sprintf("%s: original has %d lines, decoded has %d",
			errs.ErrRoundTripMismatch, e.OriginalLines, e.DecodedLines)
	default:
		return fmt.Sprintf("%s: lines match but line endings differ", errs.ErrRoundTripMismatch)
	}
}

// Unwrap returns errs.ErrRoundTripMismatch.
func (e *MismatchError) Unwrap() error {
	return errs.ErrRoundTripMismatch
}

// Verify compares a decoded corpus with the original it was encoded from.
//
// It returns nil when both are identical. Otherwise it returns a *MismatchError for the
// first line that differs, for differing line counts, or for corpora that only differ in
// line terminators. Lines are compared after splitting on "\r\n", "\n" or "\r", and
// MismatchError.Line counts them from 1.
func Verify(original, decoded string) error {
	if original == decoded {
		return nil
	}

	origLines := splitAnyLines(original)
	decLines := splitAnyLines(decoded)

	for i := range min(len(origLines), len(decLines)) {
		if origLines[i] != decLines[i] {
			return &MismatchError{
				Kind:          MismatchLine,
				Line:          i + 1,
				Original:      origLines[i],
				Decoded:       decLines[i],
				OriginalLines: len(origLines),
				DecodedLines:  len(decLines),
			}
		}
	}

	kind := MismatchLineEnding
	if len(origLines) != len(decLines) {
		kind = MismatchLineCount
	}

	return &MismatchError{
		Kind:          kind,
		OriginalLines: len(origLines),
		DecodedLines:  len(decLines),
	}
}

// splitAnyLines splits s on "\r\n", "\n" and "\r". A terminator at the end of s does not
// start another line.
func splitAnyLines(s string) []string {
	var lines []string

	start := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\n':
			lines = append(lines, s[start:i])
			start = i + 1
		case '\r':
			lines = append(lines, s[start:i])
			if i+1 < len(s) && s[i+1] == '\n' {
				i++
			}
			start = i + 1
		}
	}
	if start < len(s) {
		lines = append(lines, s[start:])
	}

	return lines
}
