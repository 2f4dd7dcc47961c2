// Package slug turns Czech and Slovak titles into URL-safe file name stems.
package slug

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Make folds diacritics, lowercases and joins alphanumeric runs with single
// hyphens: "Regály do garáže" becomes "regaly-do-garaze".
func Make(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}
	folded = strings.ToLower(folded)

	var b strings.Builder
	dash := false
	for _, r := range folded {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			if dash && b.Len() > 0 {
				b.WriteByte('-')
			}
			dash = false
			b.WriteRune(r)
			continue
		}
		dash = true
	}
	return b.String()
}

// Title builds a display title from a slug or file stem, e.g.
// "jak-vybrat-regal" gives "Jak Vybrat Regal".
func Title(stem string) string {
	s := strings.NewReplacer("-", " ", "_", " ").Replace(stem)
	return cases.Title(language.Czech).String(s)
}
