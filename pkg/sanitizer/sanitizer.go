// Package sanitizer normalizes guest-supplied strings before they reach the
// ledger. It never validates; malformed input is the validator's concern.
package sanitizer

import (
	"strings"
	"unicode"
)

// TrimAndNormalize trims leading and trailing whitespace and collapses
// internal whitespace runs to a single space.
func TrimAndNormalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}

	var result strings.Builder
	var lastWasSpace bool

	for _, r := range s {
		if unicode.IsSpace(r) {
			if !lastWasSpace {
				result.WriteRune(' ')
				lastWasSpace = true
			}
		} else {
			result.WriteRune(r)
			lastWasSpace = false
		}
	}

	return result.String()
}

// NormalizeName cleans a guest name for storage.
func NormalizeName(name string) string {
	return TrimAndNormalize(name)
}

// NormalizeEmail trims and lowercases an email address so ledger lookups
// can compare it case-insensitively.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
