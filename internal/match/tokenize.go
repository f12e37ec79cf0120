// Package match implements the keyword-matching engine: tokenization,
// entry scoring, and best-match selection.
package match

import (
	"strings"
)

// stopwords are excluded from token overlap scoring.
var stopwords = map[string]struct{}{}

func init() {
	for _, w := range []string{
		"the", "a", "an", "and", "or", "but", "if", "then", "else", "on",
		"in", "at", "for", "to", "from", "by", "with", "of", "is", "are",
		"was", "were", "be", "been", "it", "this", "that", "these", "those",
		"as", "about", "into", "over", "under", "after", "before", "between",
		"how", "what", "when", "where", "which", "who", "whom", "why", "can",
		"do", "does", "did", "will", "would", "should", "could", "may",
		"might", "you", "your", "yours", "we", "our", "ours", "they",
		"their", "theirs", "i", "me", "my", "mine",
	} {
		stopwords[w] = struct{}{}
	}
}

// IsStopword reports whether token is a common English function word.
func IsStopword(token string) bool {
	_, ok := stopwords[token]
	return ok
}

// Tokens splits text into maximal runs of ASCII letters and digits,
// lowercased, preserving order and duplicates.
func Tokens(text string) []string {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9')
	})
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		tokens = append(tokens, strings.ToLower(f))
	}
	return tokens
}

// Tokenize normalizes text into a stopword-filtered token set.
func Tokenize(text string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, t := range Tokens(text) {
		if !IsStopword(t) {
			set[t] = struct{}{}
		}
	}
	return set
}
