package textutils

import (
	"strings"
	"unicode/utf8"
)

// MinWordLength is the shortest token, in runes, that ExtractWords keeps.
const MinWordLength = 3

// stopWordsES holds high-frequency Spanish function words that carry no
// category signal.
var stopWordsES = map[string]struct{}{
	"el": {}, "la": {}, "de": {}, "del": {}, "en": {}, "y": {}, "a": {},
	"para": {}, "con": {}, "por": {}, "un": {}, "una": {}, "los": {},
	"las": {}, "que": {}, "es": {}, "se": {}, "lo": {}, "al": {}, "le": {},
	"su": {}, "me": {}, "mi": {},
}

// IsStopWord reports whether word, already normalized, is a Spanish stop word.
func IsStopWord(word string) bool {
	_, ok := stopWordsES[word]
	return ok
}

// ExtractWords normalizes text and returns its significant words in order,
// duplicates preserved. Tokens shorter than MinWordLength runes and stop
// words are dropped.
func ExtractWords(text string) []string {
	fields := strings.Fields(Normalize(text))
	words := make([]string, 0, len(fields))
	for _, f := range fields {
		if utf8.RuneCountInString(f) < MinWordLength {
			continue
		}
		if IsStopWord(f) {
			continue
		}
		words = append(words, f)
	}
	return words
}
