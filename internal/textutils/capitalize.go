package textutils

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// CapitalizeSentence upper-cases the first rune of text and lower-cases the
// rest, e.g. "ALMUERZO en Restaurante" -> "Almuerzo en restaurante".
func CapitalizeSentence(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	first, size := utf8.DecodeRuneInString(text)
	return string(unicode.ToUpper(first)) + strings.ToLower(text[size:])
}
