package assistant

import (
	"io"
	"math/rand"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campus-assistant/backend/internal/knowledge"
	"github.com/campus-assistant/backend/internal/storage"
)

func testLog() *logrus.Entry {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger.WithField("service", "test")
}

func newTestAssistant(t *testing.T, entries ...knowledge.Entry) *Assistant {
	t.Helper()
	file, err := storage.NewJSONFile(filepath.Join(t.TempDir(), "knowledge.json"))
	require.NoError(t, err)
	store, err := knowledge.NewStore(file, testLog())
	require.NoError(t, err)
	for _, e := range entries {
		_, err := store.Add(e)
		require.NoError(t, err)
	}
	return New(store, NewHistory(), rand.New(rand.NewSource(1)), testLog())
}

func TestReplyAdminTierWins(t *testing.T) {
	// The admin entry scores far lower than the built-in library category
	// would, but any positive admin match takes precedence.
	a := newTestAssistant(t, knowledge.Entry{
		Title:     "Registrar",
		Keywords:  []string{"registrar"},
		Responses: []string{"The registrar office is in Hall B."},
	})

	reply := a.Reply("library hours library study book registrar")

	require.NotNil(t, reply.Source)
	assert.Equal(t, "admin", reply.Source.Type)
	assert.Equal(t, "Registrar", reply.Source.Title)
	assert.Equal(t, "The registrar office is in Hall B.", reply.Text)
}

func TestReplyFallsBackToBuiltIn(t *testing.T) {
	a := newTestAssistant(t)

	reply := a.Reply("how do I commute and where is parking")

	assert.Nil(t, reply.Source)
	assert.Contains(t, reply.Text, "parking")
}

func TestReplyDefaultPoolOnNoMatch(t *testing.T) {
	a := newTestAssistant(t, knowledge.Entry{
		Keywords:  []string{"registrar"},
		Responses: []string{"Registrar info."},
	})

	reply := a.Reply("asdkjasjkd")

	assert.Nil(t, reply.Source)
	assert.Contains(t, defaultResponses, reply.Text)
}

func TestReplyAppendsFollowUpForQuestions(t *testing.T) {
	a := newTestAssistant(t, knowledge.Entry{
		Keywords:  []string{"library"},
		Responses: []string{"The library opens at 7 AM."},
	})

	reply := a.Reply("What are the library hours?")

	assert.True(t, strings.HasSuffix(reply.Text, followUpSuffix))
	assert.Equal(t, 1, strings.Count(reply.Text, followUpSuffix))
}

func TestReplyNoFollowUpWithoutQuestionMark(t *testing.T) {
	a := newTestAssistant(t, knowledge.Entry{
		Keywords:  []string{"library"},
		Responses: []string{"The library opens at 7 AM."},
	})

	reply := a.Reply("tell me about the library")

	assert.Equal(t, "The library opens at 7 AM.", reply.Text)
}

func TestReplyNoFollowUpWhenResponseEndsInQuestion(t *testing.T) {
	a := newTestAssistant(t, knowledge.Entry{
		Keywords:  []string{"library"},
		Responses: []string{"Which branch do you mean?"},
	})

	reply := a.Reply("Where is the library?")

	assert.Equal(t, "Which branch do you mean?", reply.Text)
}

func TestReplyRecordsHistory(t *testing.T) {
	a := newTestAssistant(t)

	a.Reply("hello campus")

	h := a.History()
	assert.Equal(t, 2, h.Len())
	last, ok := h.Last()
	require.True(t, ok)
	assert.Equal(t, RoleBot, last.Role)
	assert.False(t, last.Timestamp.IsZero())
}

func TestReplyPicksFromEntryPool(t *testing.T) {
	pool := []string{"Variant one.", "Variant two.", "Variant three."}
	a := newTestAssistant(t, knowledge.Entry{
		Keywords:  []string{"registrar"},
		Responses: pool,
	})

	for i := 0; i < 20; i++ {
		reply := a.Reply("registrar")
		assert.Contains(t, pool, reply.Text)
	}
}

func TestHistoryClear(t *testing.T) {
	h := NewHistory()
	h.Append(RoleUser, "hi")
	h.Append(RoleBot, "hello")
	require.Equal(t, 2, h.Len())

	h.Clear()

	assert.Equal(t, 0, h.Len())
	_, ok := h.Last()
	assert.False(t, ok)
}
