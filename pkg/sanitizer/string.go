package sanitizer

import (
	"strings"
	"unicode"
)

// Trim removes leading and trailing whitespace from a string.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// StripWhitespace removes every whitespace character from a string,
// including internal ones.
func StripWhitespace(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if !unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// SingleLine collapses all runs of whitespace into single spaces and trims
// the result, so multi-line input renders as one line.
func SingleLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Truncate cuts a string to at most max runes. Byte-length safe for UTF-8
// input.
func Truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
