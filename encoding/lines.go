package encoding

import "strings"

// SplitLines splits a corpus into lines.
//
// Lines are terminated by "\n" or "\r\n"; the terminator is not part of the line. A single
// trailing terminator does not produce an extra empty line, but interior and additional
// trailing empty lines are kept, so "a\n\n" yields ["a", ""]. An empty corpus has no lines.
func SplitLines(corpus string) []string {
	if corpus == "" {
		return nil
	}

	terminated := corpus[len(corpus)-1] == Terminator
	body := corpus
	if terminated {
		body = corpus[:len(corpus)-1]
	}

	lines := strings.Split(body, "\n")

	// A '\r' only belongs to the terminator when a '\n' follows it.
	last := len(lines) - 1
	for i := range lines {
		if i < last || terminated {
			lines[i] = strings.TrimSuffix(lines[i], "\r")
		}
	}

	return lines
}

// AppendLines appends each line followed by a terminator to dst.
func AppendLines(dst []byte, lines []string) []byte {
	for _, line := range lines {
		dst = append(dst, line...)
		dst = append(dst, Terminator)
	}

	return dst
}

// JoinLines returns the lines with a terminator after each one.
func JoinLines(lines []string) string {
	size := len(lines)
	for _, line := range lines {
		size += len(line)
	}

	return string(AppendLines(make([]byte, 0, size), lines))
}
