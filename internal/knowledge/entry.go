package knowledge

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Entry is an admin-provided knowledge record. Keywords are stored
// lowercased; Responses is never empty once an entry has been persisted.
type Entry struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Keywords       []string  `json:"keywords"`
	Responses      []string  `json:"responses"`
	CreatedAt      time.Time `json:"created_at"`
	SourceDocument string    `json:"source_document,omitempty"`
}

// Category is a built-in topic. The name acts as the identifier and the
// table is fixed at process start.
type Category struct {
	Name      string
	Keywords  []string
	Responses []string
}

// Normalize repairs an entry loaded from disk the same way new entries are
// shaped: missing id and created_at get filled in, the title defaults, and
// keywords are lowercased.
func (e *Entry) Normalize() {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.Title == "" {
		e.Title = "Custom"
	}
	for i, k := range e.Keywords {
		e.Keywords[i] = strings.ToLower(k)
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}
}
