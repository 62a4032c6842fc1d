package categorizer

import (
	"strings"
	"unicode/utf8"

	"fjacquet/gastos-bot/internal/textutils"

	"github.com/xrash/smetrics"
)

// Scoring constants. A subcategory needs at least MinScore points to be
// accepted by the local tier.
const (
	ScoreExact     = 10
	ScoreSubstring = 6
	ScoreFuzzy     = 4
	MinScore       = 4

	// FuzzyThreshold is the minimum Jaro-Winkler similarity for a fuzzy match.
	FuzzyThreshold = 0.85

	// minPartLength is the shortest keyword part, in runes, that is compared.
	minPartLength = 3
	// minApproxLength is the shortest length, in runes, on both sides of a
	// substring or fuzzy comparison.
	minApproxLength = 4

	jaroBoostThreshold = 0.7
	jaroPrefixSize     = 4
)

// Scorer ranks named keyword sets against a list of words. Keyword parts are
// normalized once at construction; a Scorer is immutable and safe for
// concurrent use.
type Scorer struct {
	entries []scoredEntry
}

type scoredEntry struct {
	name  string
	parts []string
}

// NewScorer builds a Scorer over names[i] with keywords[i]. Both slices must
// have the same length; order is preserved for tie-breaking.
func NewScorer(names []string, keywords [][]string) *Scorer {
	entries := make([]scoredEntry, len(names))
	for i, name := range names {
		var kws []string
		if i < len(keywords) {
			kws = keywords[i]
		}
		entries[i] = scoredEntry{name: name, parts: keywordParts(kws)}
	}
	return &Scorer{entries: entries}
}

// Len returns the number of entries.
func (s *Scorer) Len() int {
	return len(s.entries)
}

// Best returns the highest scoring entry for words. An entry replaces the
// current best only on a strictly higher score, so the earliest entry wins
// ties. ok is false when no entry reaches MinScore.
func (s *Scorer) Best(words []string) (name string, score int, ok bool) {
	if len(words) == 0 {
		return "", 0, false
	}
	bestScore := 0
	bestName := ""
	for _, e := range s.entries {
		sc := scoreParts(words, e.parts)
		if sc > bestScore {
			bestScore = sc
			bestName = e.name
		}
	}
	if bestScore < MinScore {
		return "", bestScore, false
	}
	return bestName, bestScore, true
}

// Score sums, over every word, the best match against the whitespace parts
// of the normalized keywords.
func Score(words, keywords []string) int {
	return scoreParts(words, keywordParts(keywords))
}

// keywordParts normalizes keywords and splits them into comparable parts.
func keywordParts(keywords []string) []string {
	var parts []string
	for _, kw := range keywords {
		for _, p := range strings.Fields(textutils.Normalize(kw)) {
			if utf8.RuneCountInString(p) < minPartLength {
				continue
			}
			parts = append(parts, p)
		}
	}
	return parts
}

func scoreParts(words, parts []string) int {
	total := 0
	for _, w := range words {
		best := 0
		for _, p := range parts {
			if m := matchWord(w, p); m > best {
				best = m
				if best == ScoreExact {
					break
				}
			}
		}
		total += best
	}
	return total
}

// matchWord scores one word against one keyword part.
func matchWord(word, part string) int {
	if word == part {
		return ScoreExact
	}
	if utf8.RuneCountInString(word) < minApproxLength || utf8.RuneCountInString(part) < minApproxLength {
		return 0
	}
	if strings.Contains(word, part) || strings.Contains(part, word) {
		return ScoreSubstring
	}
	if Similarity(word, part) >= FuzzyThreshold {
		return ScoreFuzzy
	}
	return 0
}

// Similarity is the Jaro-Winkler similarity of a and b in [0, 1].
func Similarity(a, b string) float64 {
	return smetrics.JaroWinkler(a, b, jaroBoostThreshold, jaroPrefixSize)
}
