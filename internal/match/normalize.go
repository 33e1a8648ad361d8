// Package match reconciles boundary-dataset region names with county finance
// records. The two datasets are authored independently and disagree on
// spelling, punctuation, and administrative suffixes, so matching goes through
// a canonical comparison key rather than raw strings.
package match

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// unitWords are administrative-unit designations dropped during
// normalization. Boundary datasets title regions "Nairobi City County" or
// "Kwale District" depending on vintage; finance records carry the bare name.
var unitWords = map[string]struct{}{
	"county":       {},
	"city":         {},
	"town":         {},
	"township":     {},
	"municipality": {},
	"district":     {},
	"subcounty":    {},
	"village":      {},
}

// foldMarks decomposes accented runes and strips the combining marks, so
// "Murangá" and "Muranga" produce the same key.
var foldMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize reduces a region name to its canonical comparison key: lowercase,
// diacritics folded, administrative-unit words removed, every non-letter rune
// dropped. It is total (never fails, empty string for garbage input) and
// idempotent, which lets callers normalize defensively without double-mangling.
func Normalize(raw string) string {
	lowered := strings.ToLower(raw)

	folded, _, err := transform.String(foldMarks, lowered)
	if err != nil {
		// Malformed UTF-8; keep the lowered input rather than failing.
		folded = lowered
	}

	var b strings.Builder
	b.Grow(len(folded))
	for _, word := range strings.Fields(folded) {
		token := keepLetters(word)
		if token == "" {
			continue
		}
		if _, unit := unitWords[token]; unit {
			continue
		}
		b.WriteString(token)
	}
	return b.String()
}

// keepLetters drops every rune that is not a Unicode letter.
func keepLetters(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsLetter(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
