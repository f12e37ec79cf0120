package knowledge

import (
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/campus-assistant/backend/internal/apperr"
	"github.com/campus-assistant/backend/internal/storage"
)

// Store holds the admin knowledge tier. Mutations build a candidate
// collection, persist it atomically, and only then swap the in-memory
// slice, so the store never diverges from disk and readers always see a
// consistent snapshot.
type Store struct {
	mu      sync.RWMutex
	entries []Entry
	file    *storage.JSONFile
	log     *logrus.Entry
}

type knowledgeDocument struct {
	Entries []diskEntry `json:"entries"`
}

// diskEntry tolerates the legacy single-response shape on load.
type diskEntry struct {
	Entry
	Response string `json:"response,omitempty"`
}

// EntryPatch carries partial updates; nil fields are left unchanged.
type EntryPatch struct {
	Title     *string
	Keywords  []string
	Responses []string
}

// NewStore loads the admin tier from file. A missing file yields an empty
// tier; unreadable data is an error.
func NewStore(file *storage.JSONFile, log *logrus.Entry) (*Store, error) {
	s := &Store{file: file, log: log}

	var doc knowledgeDocument
	found, err := file.Read(&doc)
	if err != nil {
		return nil, err
	}
	for _, de := range doc.Entries {
		e := de.Entry
		if len(e.Responses) == 0 && de.Response != "" {
			e.Responses = []string{de.Response}
		}
		if len(e.Responses) == 0 {
			continue
		}
		e.Normalize()
		s.entries = append(s.entries, e)
	}
	if found {
		log.Infof("Loaded %d knowledge entries from %s", len(s.entries), file.Path())
	}
	return s, nil
}

// All returns a snapshot copy of the tier in stable order.
func (s *Store) All() []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Get returns the entry with the given id.
func (s *Store) Get(id string) (Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, e := range s.entries {
		if e.ID == id {
			return e, nil
		}
	}
	return Entry{}, apperr.NotFound("Entry not found")
}

// Add validates, persists, and appends a new entry, returning it in its
// normalized form.
func (s *Store) Add(e Entry) (Entry, error) {
	if len(e.Responses) == 0 {
		return Entry{}, apperr.Validation("responses must be a non-empty array")
	}
	e.Normalize()

	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]Entry, len(s.entries), len(s.entries)+1)
	copy(next, s.entries)
	next = append(next, e)

	if err := s.persistAndSwap(next); err != nil {
		return Entry{}, err
	}
	return e, nil
}

// Update applies a partial patch to the entry with the given id.
func (s *Store) Update(id string, patch EntryPatch) (Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]Entry, len(s.entries))
	copy(next, s.entries)

	idx := -1
	for i := range next {
		if next[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return Entry{}, apperr.NotFound("Entry not found")
	}

	if patch.Title != nil {
		next[idx].Title = *patch.Title
	}
	if len(patch.Keywords) > 0 {
		next[idx].Keywords = patch.Keywords
	}
	if len(patch.Responses) > 0 {
		next[idx].Responses = patch.Responses
	}
	// Normalize lowercases keywords in place; detach the slice from the
	// live entries first so they stay untouched until the write succeeds.
	next[idx].Keywords = append([]string(nil), next[idx].Keywords...)
	next[idx].Normalize()

	if err := s.persistAndSwap(next); err != nil {
		return Entry{}, err
	}
	return next[idx], nil
}

// Delete removes the entry with the given id.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]Entry, 0, len(s.entries))
	for _, e := range s.entries {
		if e.ID != id {
			next = append(next, e)
		}
	}
	if len(next) == len(s.entries) {
		return apperr.NotFound("Entry not found")
	}

	return s.persistAndSwap(next)
}

// persistAndSwap writes the candidate collection to disk and swaps it in
// only on success. Callers hold the write lock.
func (s *Store) persistAndSwap(next []Entry) error {
	doc := knowledgeDocument{Entries: make([]diskEntry, len(next))}
	for i, e := range next {
		doc.Entries[i] = diskEntry{Entry: e}
	}
	if err := s.file.Write(doc); err != nil {
		s.log.WithError(err).Error("Failed to persist knowledge entries")
		return apperr.Persistence(err)
	}
	s.entries = next
	return nil
}
