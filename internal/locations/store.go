// Package locations manages the campus location records that back the
// locations API. It follows the same persist-then-swap discipline as the
// knowledge store.
package locations

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/campus-assistant/backend/internal/apperr"
	"github.com/campus-assistant/backend/internal/storage"
)

// Location is a named campus place. Latitude and longitude are optional.
type Location struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	MapsQuery   string    `json:"maps_query"`
	Latitude    *float64  `json:"latitude"`
	Longitude   *float64  `json:"longitude"`
	CreatedAt   time.Time `json:"created_at"`
}

// Patch carries partial updates; nil fields are left unchanged. SetLatitude
// and SetLongitude distinguish "leave alone" from "clear".
type Patch struct {
	Name         *string
	Category     *string
	Description  *string
	MapsQuery    *string
	Latitude     *float64
	SetLatitude  bool
	Longitude    *float64
	SetLongitude bool
}

type locationsDocument struct {
	Locations []Location `json:"locations"`
}

// Store holds the location collection.
type Store struct {
	mu        sync.RWMutex
	locations []Location
	file      *storage.JSONFile
	log       *logrus.Entry
}

// NewStore loads locations from file; a missing file yields an empty store.
func NewStore(file *storage.JSONFile, log *logrus.Entry) (*Store, error) {
	s := &Store{file: file, log: log}

	var doc locationsDocument
	found, err := file.Read(&doc)
	if err != nil {
		return nil, err
	}
	for _, loc := range doc.Locations {
		normalize(&loc)
		s.locations = append(s.locations, loc)
	}
	if found {
		log.Infof("Loaded %d locations from %s", len(s.locations), file.Path())
	}
	return s, nil
}

func normalize(loc *Location) {
	if loc.ID == "" {
		loc.ID = uuid.NewString()
	}
	if loc.Name == "" {
		loc.Name = "Unnamed Location"
	}
	if loc.Category == "" {
		loc.Category = "General"
	}
	if loc.CreatedAt.IsZero() {
		loc.CreatedAt = time.Now()
	}
}

// All returns a snapshot copy in stable order.
func (s *Store) All() []Location {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Location, len(s.locations))
	copy(out, s.locations)
	return out
}

// Add validates, persists, and appends a new location.
func (s *Store) Add(loc Location) (Location, error) {
	if loc.Name == "" {
		return Location{}, apperr.Validation("name is required")
	}
	normalize(&loc)

	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]Location, len(s.locations), len(s.locations)+1)
	copy(next, s.locations)
	next = append(next, loc)

	if err := s.persistAndSwap(next); err != nil {
		return Location{}, err
	}
	return loc, nil
}

// Update applies a partial patch to the location with the given id.
func (s *Store) Update(id string, patch Patch) (Location, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]Location, len(s.locations))
	copy(next, s.locations)

	idx := -1
	for i := range next {
		if next[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return Location{}, apperr.NotFound("Location not found")
	}

	if patch.Name != nil && *patch.Name != "" {
		next[idx].Name = *patch.Name
	}
	if patch.Category != nil {
		next[idx].Category = *patch.Category
	}
	if patch.Description != nil {
		next[idx].Description = *patch.Description
	}
	if patch.MapsQuery != nil {
		next[idx].MapsQuery = *patch.MapsQuery
	}
	if patch.SetLatitude {
		next[idx].Latitude = patch.Latitude
	}
	if patch.SetLongitude {
		next[idx].Longitude = patch.Longitude
	}

	if err := s.persistAndSwap(next); err != nil {
		return Location{}, err
	}
	return next[idx], nil
}

// Delete removes the location with the given id.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]Location, 0, len(s.locations))
	for _, loc := range s.locations {
		if loc.ID != id {
			next = append(next, loc)
		}
	}
	if len(next) == len(s.locations) {
		return apperr.NotFound("Location not found")
	}

	return s.persistAndSwap(next)
}

func (s *Store) persistAndSwap(next []Location) error {
	if err := s.file.Write(locationsDocument{Locations: next}); err != nil {
		s.log.WithError(err).Error("Failed to persist locations")
		return apperr.Persistence(err)
	}
	s.locations = next
	return nil
}
