package ingest_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/campus-assistant/backend/internal/ingest"
)

func TestChunkSplitsOnBlankLines(t *testing.T) {
	segments := ingest.Chunk("Para one.\n\nPara two.", 800, 10)

	assert.Equal(t, []string{"Para one.", "Para two."}, segments)
}

func TestChunkSlicesLongParagraphs(t *testing.T) {
	text := strings.Repeat("a", 1700)

	segments := ingest.Chunk(text, 800, 10)

	assert.Len(t, segments, 3)
	assert.Len(t, segments[0], 800)
	assert.Len(t, segments[1], 800)
	assert.Len(t, segments[2], 100)
}

func TestChunkTruncatesToMaxSegments(t *testing.T) {
	paragraphs := make([]string, 12)
	for i := range paragraphs {
		paragraphs[i] = "paragraph content"
	}
	text := strings.Join(paragraphs, "\n\n")

	segments := ingest.Chunk(text, 800, 10)

	assert.Len(t, segments, 10)
}

func TestChunkSkipsWhitespaceParagraphs(t *testing.T) {
	segments := ingest.Chunk("First.\n\n   \n\nSecond.", 800, 10)

	assert.Equal(t, []string{"First.", "Second."}, segments)
}

func TestChunkEmptyText(t *testing.T) {
	assert.Empty(t, ingest.Chunk("", 800, 10))
	assert.Empty(t, ingest.Chunk("   \n\n \t ", 800, 10))
}

func TestChunkBlankLineWithSpaces(t *testing.T) {
	segments := ingest.Chunk("One.\n  \nTwo.", 800, 10)

	assert.Equal(t, []string{"One.", "Two."}, segments)
}
