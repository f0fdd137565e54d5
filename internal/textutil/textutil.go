// Package textutil provides the pure text normalization helpers used by the
// classification pipeline: whitespace collapsing, word truncation, matching
// normalization and currency formatting.
package textutil

import "strings"

// Ellipsis is appended to truncated text.
const Ellipsis = "…"

// NormalizeSpaces collapses runs of whitespace (including tabs and newlines)
// into single spaces and trims both ends. Idempotent; empty input yields "".
func NormalizeSpaces(s string) string {
	if s == "" {
		return ""
	}
	return strings.Join(strings.Fields(s), " ")
}

// TruncateWords limits s to maxWords whitespace-separated words. Text within
// the limit is returned unchanged; longer text is cut, stripped of trailing
// punctuation and suffixed with a single ellipsis character.
func TruncateWords(s string, maxWords int) string {
	if maxWords <= 0 {
		return ""
	}

	words := strings.Fields(s)
	if len(words) == 0 {
		return ""
	}
	if len(words) <= maxWords {
		return s
	}

	cut := strings.Join(words[:maxWords], " ")
	cut = strings.TrimRight(cut, ".,;:!?-")
	return cut + Ellipsis
}
