package match_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/campus-assistant/backend/internal/knowledge"
	"github.com/campus-assistant/backend/internal/match"
)

func scoreFor(t *testing.T, query string, e *knowledge.Entry) int {
	t.Helper()
	return match.ScoreEntry(strings.ToLower(query), match.Tokenize(query), e)
}

func TestScoreEntryKeywordHitAddsExactlyThree(t *testing.T) {
	// The keyword tokenizes to stopwords only, so the substring hit is the
	// sole signal it can contribute.
	entry := &knowledge.Entry{
		Title:     "yyy",
		Keywords:  []string{"of the"},
		Responses: []string{"zzz"},
	}

	without := scoreFor(t, "campus info", entry)
	with := scoreFor(t, "campus info of the", entry)

	assert.Equal(t, 3, with-without)
}

func TestScoreEntryKeywordHitsUncapped(t *testing.T) {
	entry := &knowledge.Entry{
		Keywords:  []string{"of the", "in a", "on a", "at a", "by a"},
		Responses: []string{"zzz"},
	}

	score := scoreFor(t, "of the in a on a at a by a", entry)

	assert.Equal(t, 15, score)
}

func TestScoreEntryKeywordTokenOverlapCappedAtFour(t *testing.T) {
	// No keyword is a literal substring of the query, but six keyword
	// tokens overlap with it.
	entry := &knowledge.Entry{
		Keywords: []string{
			"red apple", "green pear", "blue plum",
			"gold fig", "dark grape", "pale melon",
		},
		Responses: []string{"zzz"},
	}

	score := scoreFor(t, "apple pear plum fig grape melon", entry)

	assert.Equal(t, 4, score)
}

func TestScoreEntryTitleOverlapCappedAtTwo(t *testing.T) {
	entry := &knowledge.Entry{
		Title:     "one two three four",
		Responses: []string{"zzz"},
	}

	score := scoreFor(t, "one two three four", entry)

	assert.Equal(t, 2, score)
}

func TestScoreEntryResponseOverlapCappedAtFive(t *testing.T) {
	entry := &knowledge.Entry{
		Responses: []string{"alpha beta gamma delta epsilon zeta", "zzz"},
	}

	score := scoreFor(t, "alpha beta gamma delta epsilon zeta", entry)

	assert.Equal(t, 5, score)
}

func TestScoreEntryScansOnlyFirstTwoResponses(t *testing.T) {
	entry := &knowledge.Entry{
		Responses: []string{"first segment", "second segment", "hiddenword here"},
	}

	assert.Equal(t, 0, scoreFor(t, "hiddenword", entry))
	assert.Equal(t, 1, scoreFor(t, "second", entry))
}

func TestScoreEntryZeroForNoOverlap(t *testing.T) {
	entry := &knowledge.Entry{
		Title:     "Campus Parking",
		Keywords:  []string{"parking"},
		Responses: []string{"Permits cost $300 per year."},
	}

	assert.Equal(t, 0, scoreFor(t, "asdkjasjkd", entry))
}

func TestScoreCategoryCountsSubstringHits(t *testing.T) {
	cat := &knowledge.Category{
		Name:     "parking",
		Keywords: []string{"parking", "shuttle", "bus"},
	}

	assert.Equal(t, 2, match.ScoreCategory("where is parking and the shuttle", cat))
	assert.Equal(t, 0, match.ScoreCategory("library hours", cat))
}

func TestScoreCategoryUncapped(t *testing.T) {
	cat := &knowledge.Category{
		Keywords: []string{"k1", "k2", "k3", "k4", "k5", "k6"},
	}

	assert.Equal(t, 6, match.ScoreCategory("k1 k2 k3 k4 k5 k6", cat))
}
