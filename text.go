package eol

import "strings"

// StringFunc converts a complete text value.
type StringFunc func(string) string

// collapse rewrites CRLF before lone CR, so a CRLF pair is never counted twice.
var collapse = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// NormalizeString replaces every CR, LF and CRLF in s with le.
func NormalizeString(s string, le LineEnding) string {
	if s == "" {
		return s
	}
	s = collapse.Replace(s)
	if le == LF {
		return s
	}
	return strings.ReplaceAll(s, "\n", le.Sequence())
}

func stringConverter(le LineEnding) StringFunc {
	return func(s string) string {
		return NormalizeString(s, le)
	}
}
