package api

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 100))
	assert.Equal(t, "abc...", truncate("abcdef", 3))

	// Multi-byte runes must never be split mid-sequence.
	bullets := strings.Repeat("• item\n", 30)
	got := truncate(bullets, 100)
	assert.True(t, utf8.ValidString(got))
	assert.Equal(t, 100, utf8.RuneCountInString(strings.TrimSuffix(got, "...")))
}
