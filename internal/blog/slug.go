package blog

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// deaccent decomposes characters and drops the combining marks, so
// "Pâté" folds to "Pate".
var deaccent = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// GenerateSlug derives a lowercase URL-safe token from a title: diacritics
// are folded to ASCII, runs of whitespace and punctuation collapse into a
// single hyphen, leading and trailing hyphens are trimmed. Deterministic and
// idempotent on its own output.
//
// GenerateSlug does not make the result unique; callers rely on the store's
// unique constraint and get ErrSlugTaken on a collision.
func GenerateSlug(title string) string {
	folded, _, err := transform.String(deaccent, title)
	if err != nil {
		folded = title
	}

	var b strings.Builder
	pending := false
	for _, r := range strings.ToLower(folded) {
		if r >= 'a' && r <= 'z' || r >= '0' && r <= '9' {
			if pending && b.Len() > 0 {
				b.WriteByte('-')
			}
			pending = false
			b.WriteRune(r)
			continue
		}
		pending = true
	}

	return b.String()
}
