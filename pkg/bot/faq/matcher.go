package faq

import (
	"strings"
	"unicode"
)

// Entry is one question/answer record used for fallback matching.
// Keywords are expected pre-normalized via KeywordList.
type Entry struct {
	Question string
	Answer   string
	Keywords []string
}

// KeywordList derives the normalized keyword set from the stored
// comma-delimited string: trimmed, lowercased, empty tokens dropped.
func KeywordList(raw string) []string {
	parts := strings.Split(raw, ",")
	keywords := make([]string, 0, len(parts))
	for _, p := range parts {
		k := strings.ToLower(strings.TrimSpace(p))
		if k != "" {
			keywords = append(keywords, k)
		}
	}
	return keywords
}

// Tokenize splits the case-folded utterance into alphanumeric runs.
func Tokenize(s string) []string {
	return strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// Match scores every entry by the number of distinct utterance tokens
// found in its keyword list and returns the best scorer, or nil when no
// entry scores above zero. Comparison is strict, so ties keep the
// first-seen entry.
//
// This is a linear scan over the entries. Fine at FAQ-catalog sizes;
// an inverted keyword index would be the upgrade path for large sets.
func Match(utterance string, entries []Entry) *Entry {
	tokens := Tokenize(utterance)
	if len(tokens) == 0 {
		return nil
	}

	seen := make(map[string]bool, len(tokens))
	for _, t := range tokens {
		seen[t] = true
	}

	var best *Entry
	maxMatches := 0
	for i := range entries {
		matches := 0
		for _, k := range entries[i].Keywords {
			if seen[k] {
				matches++
			}
		}
		if matches > maxMatches {
			maxMatches = matches
			best = &entries[i]
		}
	}

	return best
}
