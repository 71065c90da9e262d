// Package slug derives URL-safe, human-readable listing identifiers.
package slug

import (
	"strings"
	"unicode"
)

// Make converts arbitrary text into a lowercase, hyphen-separated slug:
// whitespace becomes hyphens, non-word characters are stripped, repeated
// hyphens collapse and leading/trailing hyphens are trimmed.
func Make(text string) string {
	var b strings.Builder
	b.Grow(len(text))

	prevHyphen := false
	for _, r := range strings.TrimSpace(strings.ToLower(text)) {
		switch {
		case unicode.IsSpace(r) || r == '-':
			if !prevHyphen {
				b.WriteByte('-')
				prevHyphen = true
			}
		case unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_':
			b.WriteRune(r)
			prevHyphen = false
		}
	}

	return strings.Trim(b.String(), "-")
}

// ForListing produces the slug for a listing from the book title, author and
// the owning copy's identifier. The function is pure and deterministic; the
// last 8 characters of the identifier are appended so that two copies of the
// same book get distinct slugs without any collision checking.
func ForListing(title, author, copyID string) string {
	base := Make(title + " " + author)
	shortID := copyID
	if len(copyID) > 8 {
		shortID = copyID[len(copyID)-8:]
	}
	if base == "" {
		return shortID
	}

	return base + "-" + shortID
}
