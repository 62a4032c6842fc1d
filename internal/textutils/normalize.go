// Package textutils provides text normalization and tokenization for short
// Spanish expense messages.
package textutils

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize lower-cases text, strips diacritics, replaces every rune that is
// not a letter, digit or whitespace with a space, collapses whitespace runs
// and trims the result. Normalize is idempotent and Normalize("") == "".
func Normalize(text string) string {
	if text == "" {
		return ""
	}

	// A transformer chain keeps state, so each call builds its own.
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	stripped, _, err := transform.String(t, strings.ToLower(text))
	if err != nil {
		stripped = strings.ToLower(text)
	}

	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			return r
		}
		return ' '
	}, stripped)

	return strings.Join(strings.Fields(cleaned), " ")
}
