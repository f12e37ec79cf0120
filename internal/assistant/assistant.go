// Package assistant selects the best canned response for a free-text query
// across the admin and built-in knowledge tiers.
package assistant

import (
	"math/rand"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/campus-assistant/backend/internal/knowledge"
	"github.com/campus-assistant/backend/internal/match"
)

const followUpSuffix = "\n\nIs there anything else you'd like to know?"

// defaultResponses is the fallback pool when neither tier matches.
var defaultResponses = []string{
	"Thank you for your question! I'm here to help with college-related inquiries.\n\n" +
		"I can assist with:\n" +
		"• Admission requirements and applications\n" +
		"• Course information and academic programs\n" +
		"• Financial aid and scholarships\n" +
		"• Campus services and facilities\n" +
		"• Student life and activities\n" +
		"• Technical support\n" +
		"• Academic calendar and deadlines\n\n" +
		"Could you please rephrase your question or ask about something specific?",
	"I appreciate your question! While I'm designed to help with college-related topics, I want " +
		"to make sure I understand exactly what you need.\n\n" +
		"Try asking about:\n" +
		"• How to apply to college\n" +
		"• What courses are available\n" +
		"• How much does college cost\n" +
		"• What services are available on campus\n" +
		"• When are important deadlines\n\n" +
		"Or feel free to ask your question in a different way!",
	"I'm here to help with college questions! Sometimes I need a bit more context to provide " +
		"the best answer.\n\n" +
		"You can ask me about:\n" +
		"• Academic programs and requirements\n" +
		"• Financial aid and costs\n" +
		"• Campus life and activities\n" +
		"• Student services and support\n" +
		"• Important dates and deadlines\n\n" +
		"What would you like to know more about?",
}

// Source identifies where a reply came from when it was an admin entry.
type Source struct {
	Type           string `json:"type"`
	ID             string `json:"id"`
	Title          string `json:"title"`
	SourceDocument string `json:"source_document,omitempty"`
}

// Reply is a selected response plus its provenance. Source is nil for
// built-in and fallback replies.
type Reply struct {
	Text   string
	Source *Source
}

// Assistant orchestrates the two-tier lookup. The random source is injected
// so tests can fix the seed.
type Assistant struct {
	store   *knowledge.Store
	builtin []knowledge.Category
	history *History
	log     *logrus.Entry

	rngMu sync.Mutex
	rng   *rand.Rand
}

// New wires an assistant over the admin store and the built-in tier.
func New(store *knowledge.Store, history *History, rng *rand.Rand, log *logrus.Entry) *Assistant {
	return &Assistant{
		store:   store,
		builtin: knowledge.BuiltIn(),
		history: history,
		log:     log,
		rng:     rng,
	}
}

// History exposes the conversation record for the stats endpoints.
func (a *Assistant) History() *History {
	return a.history
}

// Reply runs the selection pipeline: admin tier first, built-in tier only
// when no admin entry scored, then the fallback pool. Every call records a
// user turn and a bot turn.
func (a *Assistant) Reply(message string) Reply {
	queryLower := strings.ToLower(message)
	queryTokens := match.Tokenize(message)

	a.history.Append(RoleUser, message)

	reply := a.selectReply(message, queryLower, queryTokens)

	a.history.Append(RoleBot, reply.Text)
	return reply
}

func (a *Assistant) selectReply(message, queryLower string, queryTokens map[string]struct{}) Reply {
	entries := a.store.All()
	if entry, score := match.BestEntry(entries, queryLower, queryTokens); entry != nil && len(entry.Responses) > 0 {
		a.log.WithFields(logrus.Fields{"entry": entry.ID, "score": score}).Debug("Admin entry matched")
		return Reply{
			Text: a.personalize(message, a.pick(entry.Responses)),
			Source: &Source{
				Type:           "admin",
				ID:             entry.ID,
				Title:          entry.Title,
				SourceDocument: entry.SourceDocument,
			},
		}
	}

	if cat, score := match.BestCategory(a.builtin, queryLower); cat != nil {
		a.log.WithFields(logrus.Fields{"category": cat.Name, "score": score}).Debug("Built-in category matched")
		return Reply{Text: a.personalize(message, a.pick(cat.Responses))}
	}

	return Reply{Text: a.personalize(message, a.pick(defaultResponses))}
}

// personalize appends the follow-up prompt when the query was a question
// and the chosen response does not already end in one.
func (a *Assistant) personalize(message, text string) string {
	if strings.Contains(message, "?") && !strings.HasSuffix(strings.TrimSpace(text), "?") {
		return text + followUpSuffix
	}
	return text
}

// pick chooses uniformly among the candidate responses.
func (a *Assistant) pick(responses []string) string {
	if len(responses) == 1 {
		return responses[0]
	}
	a.rngMu.Lock()
	defer a.rngMu.Unlock()
	return responses[a.rng.Intn(len(responses))]
}
