package sanitizer

import "strings"

// ToHandle normalizes a social handle to have exactly one leading "@".
// Whitespace is stripped first so pasted handles like "@ jdoe" survive.
// Empty input stays empty.
func ToHandle(s string) string {
	s = StripWhitespace(s)
	if s == "" {
		return ""
	}
	return "@" + strings.TrimLeft(s, "@")
}

// HandleName returns the bare account name of a handle, without any leading
// "@" and without whitespace.
func HandleName(s string) string {
	return strings.TrimLeft(StripWhitespace(s), "@")
}
