package match

import (
	"strings"

	"github.com/campus-assistant/backend/internal/knowledge"
)

// Per-signal caps. Keyword hits are the strongest explicit signal and scale
// freely; the token overlap signals are rate-limited so a long keyword list
// or response body cannot dominate the score through sheer token count.
const (
	keywordHitWeight  = 3
	keywordOverlapCap = 4
	titleOverlapCap   = 2
	replyOverlapCap   = 5
	replySampleSize   = 2
)

// ScoreEntry computes the match score between a query and an admin entry
// from four additive signals: literal keyword hits, keyword token overlap,
// title token overlap, and token overlap with the first two responses.
func ScoreEntry(queryLower string, queryTokens map[string]struct{}, e *knowledge.Entry) int {
	score := 0
	for _, k := range e.Keywords {
		if k != "" && strings.Contains(queryLower, k) {
			score += keywordHitWeight
		}
	}

	keywordTokens := make(map[string]struct{})
	for _, k := range e.Keywords {
		for t := range Tokenize(k) {
			keywordTokens[t] = struct{}{}
		}
	}
	score += cappedOverlap(queryTokens, keywordTokens, keywordOverlapCap)

	score += cappedOverlap(queryTokens, Tokenize(e.Title), titleOverlapCap)

	sample := e.Responses
	if len(sample) > replySampleSize {
		sample = sample[:replySampleSize]
	}
	score += cappedOverlap(queryTokens, Tokenize(strings.Join(sample, " \n ")), replyOverlapCap)

	return score
}

// ScoreCategory computes the simplified built-in score: the raw count of
// keywords appearing as literal substrings of the query.
func ScoreCategory(queryLower string, c *knowledge.Category) int {
	score := 0
	for _, k := range c.Keywords {
		if strings.Contains(queryLower, k) {
			score++
		}
	}
	return score
}

func cappedOverlap(query, other map[string]struct{}, limit int) int {
	n := 0
	for t := range query {
		if _, ok := other[t]; ok {
			n++
			if n == limit {
				break
			}
		}
	}
	return n
}
