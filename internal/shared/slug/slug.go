// Package slug derives URL-safe identity keys from display names. The same
// normalization backs country slugs and the product slug identity used by
// the catalog importer, so it must stay deterministic across runs.
package slug

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var deaccent = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Make normalizes a name into a slug: diacritics folded to their base
// letters, lowercased, runs of non-alphanumeric characters collapsed to a
// single hyphen, leading and trailing hyphens trimmed.
func Make(name string) string {
	folded, _, err := transform.String(deaccent, name)
	if err != nil {
		folded = name
	}

	var b strings.Builder
	b.Grow(len(folded))

	pendingHyphen := false
	for _, r := range strings.ToLower(folded) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
		} else {
			pendingHyphen = true
		}
	}

	return b.String()
}

// Join builds a slug from multiple name parts, e.g. a product name and its
// destination code.
func Join(parts ...string) string {
	return Make(strings.Join(parts, "-"))
}
