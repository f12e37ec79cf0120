package ingest

import (
	"sort"
	"strings"

	"github.com/campus-assistant/backend/internal/match"
)

const (
	titleKeywordLimit = 5
	frequentTokens    = 10
	minTokenLength    = 3
)

// DeriveKeywords builds the keyword list for an ingested document from
// three sources in priority order: the user-supplied comma-separated list,
// tokens from the title, and the most frequent tokens of the body text.
// Deduplication preserves that order and the result is truncated to max
// entries, so truncation is deterministic.
func DeriveKeywords(userCSV, title, text string, max int) []string {
	var candidates []string

	for _, k := range strings.Split(userCSV, ",") {
		if k = strings.ToLower(strings.TrimSpace(k)); k != "" {
			candidates = append(candidates, k)
		}
	}

	titleCount := 0
	for _, t := range match.Tokens(title) {
		if len(t) < minTokenLength {
			continue
		}
		candidates = append(candidates, t)
		if titleCount++; titleCount == titleKeywordLimit {
			break
		}
	}

	candidates = append(candidates, topFrequent(text, frequentTokens)...)

	seen := make(map[string]struct{}, len(candidates))
	keywords := make([]string, 0, max)
	for _, k := range candidates {
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		keywords = append(keywords, k)
		if len(keywords) == max {
			break
		}
	}
	return keywords
}

// topFrequent returns the n most frequent non-stopword tokens of the text,
// ties broken by first occurrence.
func topFrequent(text string, n int) []string {
	freq := make(map[string]int)
	var order []string
	for _, t := range match.Tokens(text) {
		if len(t) < minTokenLength || match.IsStopword(t) {
			continue
		}
		if freq[t] == 0 {
			order = append(order, t)
		}
		freq[t]++
	}

	firstSeen := make(map[string]int, len(order))
	for i, t := range order {
		firstSeen[t] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		if freq[order[i]] != freq[order[j]] {
			return freq[order[i]] > freq[order[j]]
		}
		return firstSeen[order[i]] < firstSeen[order[j]]
	})

	if len(order) > n {
		order = order[:n]
	}
	return order
}
