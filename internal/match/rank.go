package match

import (
	"github.com/campus-assistant/backend/internal/knowledge"
)

// BestEntry selects the strictly highest scoring entry in iteration order.
// Ties resolve to the first entry reaching the maximum; a score of zero is
// never a match and yields nil.
func BestEntry(entries []knowledge.Entry, queryLower string, queryTokens map[string]struct{}) (*knowledge.Entry, int) {
	var best *knowledge.Entry
	bestScore := 0
	for i := range entries {
		if score := ScoreEntry(queryLower, queryTokens, &entries[i]); score > bestScore {
			bestScore = score
			best = &entries[i]
		}
	}
	return best, bestScore
}

// BestCategory selects the strictly highest scoring built-in category using
// the simplified scorer, with the same tie-break and zero-score rules.
func BestCategory(categories []knowledge.Category, queryLower string) (*knowledge.Category, int) {
	var best *knowledge.Category
	bestScore := 0
	for i := range categories {
		if score := ScoreCategory(queryLower, &categories[i]); score > bestScore {
			bestScore = score
			best = &categories[i]
		}
	}
	return best, bestScore
}
