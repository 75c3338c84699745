// Package prefix computes shared prefix lengths between strings.
//
// Lengths are counted in bytes, which are the code units of Go strings.
package prefix

import "unicode/utf8"

// CommonLength returns the number of leading bytes that a and b share.
//
// The scan stops at the first mismatching position or when either string is exhausted,
// so the result is always in [0, min(len(a), len(b))]. It equals the minimum exactly
// when one string is a prefix of the other.
func CommonLength(a, b string) int {
	n := min(len(a), len(b))
	// bounds check elimination
	a, b = a[:n], b[:n]

	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return i
		}
	}

	return n
}

// CommonRuneLength is like CommonLength but never splits a UTF-8 sequence of b.
//
// When the shared byte prefix ends inside a multi-byte rune, the length is moved back to
// the start of that rune so that b[CommonRuneLength(a, b):] begins on a rune boundary.
// Invalid UTF-8 is treated byte by byte.
func CommonRuneLength(a, b string) int {
	n := CommonLength(a, b)
	for n > 0 && n < len(b) && !utf8.RuneStart(b[n]) {
		n--
	}

	return n
}
