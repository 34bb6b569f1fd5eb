package clubs

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// CanonicalName reduces a club name to the form used for cross-source
// matching: diacritics folded to their latin base, lower-cased, trimmed.
// Two names refer to the same club exactly when their canonical forms are
// equal; no edit-distance or phonetic matching happens anywhere.
func CanonicalName(name string) string {
	fold := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(fold, name)
	if err != nil {
		folded = name
	}
	return strings.ToLower(strings.TrimSpace(folded))
}
