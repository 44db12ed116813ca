// Package textutil provides rune-safe text helpers for feed field limits.
package textutil

import (
	"strings"
	"unicode/utf8"
)

// Ellipsis marks text that Truncate had to shorten.
const Ellipsis = "..."

// Truncate shortens s to at most limit runes. Text within the limit is
// returned unchanged. Longer text is cut to limit-3 runes with an ellipsis
// appended, so the result is exactly limit runes long. Truncating an
// already-truncated string is a no-op.
func Truncate(s string, limit int) string {
	if limit <= 0 {
		return ""
	}

	if utf8.RuneCountInString(s) <= limit {
		return s
	}

	if limit <= len(Ellipsis) {
		return Clip(s, limit)
	}

	return Clip(s, limit-len(Ellipsis)) + Ellipsis
}

// Clip cuts s to at most limit runes without any marker.
func Clip(s string, limit int) string {
	if limit <= 0 {
		return ""
	}

	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}

	return string(runes[:limit])
}

// CleanTag strips surrounding whitespace and double quotes from a tag.
// Export feeds wrap some tags in literal quotes, sometimes padded with
// spaces on either side of the quotes.
func CleanTag(s string) string {
	s = strings.TrimSpace(s)
	s = strings.Trim(s, `"`)

	return strings.TrimSpace(s)
}

// NormalizeWhitespace replaces runs of whitespace with a single space.
func NormalizeWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
