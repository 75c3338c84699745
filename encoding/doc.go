// Package encoding implements front coding of ordered line sequences.
//
// Front coding (also known as incremental encoding) stores each line as the length of
// the prefix it shares with the previous line plus the remaining suffix. Sorted word
// lists, dictionaries and index terms share long prefixes between neighbours, so most
// records are much shorter than the lines they stand for.
//
// # Wire Format
//
// Every line becomes one text record terminated by a newline:
//
//	<prefixLength> <suffix>\n
//
// The prefix length is a non-negative decimal integer counted in bytes. The first record
// always has prefix length 0 and carries the whole first line. For example the lines
// "apple", "applesauce" and "apply" encode as:
//
//	0 apple
//	5 sauce
//	4 y
//
// # Decoding
//
// Records are split strictly on '\n' and each record is split on its first space only,
// so suffixes may contain interior spaces. Each line is rebuilt from the previously
// rebuilt line, never from the previous raw suffix:
//
//	line[k] = line[k-1][:prefixLength[k]] + suffix[k]
//
// Malformed records produce errors that wrap errs.ErrMalformedRecord together with a more
// specific cause (errs.ErrMissingSeparator, errs.ErrInvalidPrefixLength or
// errs.ErrPrefixOutOfRange).
//
// # Line Splitting
//
// SplitLines accepts both "\n" and "\r\n" terminators. Decoded output always uses "\n",
// so a CRLF corpus decodes to the same lines with LF terminators.
//
// # Thread Safety
//
// Package-level functions are safe for concurrent use. FrontEncoder and FrontDecoder
// instances are not; use one per goroutine.
package encoding
