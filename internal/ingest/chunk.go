package ingest

import (
	"regexp"
	"strings"
)

var paragraphSplit = regexp.MustCompile(`\n\s*\n`)

// Chunk splits text on blank-line boundaries and slices each paragraph into
// segments of at most size runes, keeping document order and truncating the
// result to maxSegments.
func Chunk(text string, size, maxSegments int) []string {
	var segments []string
	for _, para := range paragraphSplit.Split(text, -1) {
		para = strings.TrimSpace(para)
		if para == "" {
			continue
		}
		runes := []rune(para)
		for start := 0; start < len(runes); start += size {
			end := start + size
			if end > len(runes) {
				end = len(runes)
			}
			segments = append(segments, string(runes[start:end]))
			if len(segments) == maxSegments {
				return segments
			}
		}
	}
	return segments
}
