package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/campus-assistant/backend/internal/apperr"
	"github.com/campus-assistant/backend/internal/locations"
)

type LocationListResponse struct {
	Locations []locations.Location `json:"locations"`
	Status    string               `json:"status"`
}

type LocationResponse struct {
	Location locations.Location `json:"location"`
	Status   string             `json:"status"`
}

func (s *Server) handleLocations(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		locs := s.Locations.All()
		if locs == nil {
			locs = []locations.Location{}
		}
		jsonResponse(w, http.StatusOK, LocationListResponse{Locations: locs, Status: "success"})
	case http.MethodPost:
		s.createLocation(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (s *Server) createLocation(w http.ResponseWriter, r *http.Request) {
	if !s.requireAdmin(r) {
		s.writeError(w, r, apperr.Unauthorized())
		return
	}

	var body map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		s.writeError(w, r, apperr.Validation("Invalid JSON"))
		return
	}

	loc := locations.Location{
		Name:        strings.TrimSpace(stringField(body, "name")),
		Category:    stringField(body, "category"),
		Description: stringField(body, "description"),
		MapsQuery:   stringField(body, "maps_query"),
		Latitude:    floatField(body["latitude"]),
		Longitude:   floatField(body["longitude"]),
	}

	created, err := s.Locations.Add(loc)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	jsonResponse(w, http.StatusOK, LocationResponse{Location: created, Status: "success"})
}

func (s *Server) handleLocationItem(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/api/locations/")
	if id == "" || strings.Contains(id, "/") {
		http.NotFound(w, r)
		return
	}

	switch r.Method {
	case http.MethodPut:
		s.updateLocation(w, r, id)
	case http.MethodDelete:
		s.deleteLocation(w, r, id)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (s *Server) updateLocation(w http.ResponseWriter, r *http.Request, id string) {
	if !s.requireAdmin(r) {
		s.writeError(w, r, apperr.Unauthorized())
		return
	}

	var body map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		s.writeError(w, r, apperr.Validation("Invalid JSON"))
		return
	}

	var patch locations.Patch
	if v, ok := body["name"]; ok {
		if name := strings.TrimSpace(toString(v)); name != "" {
			patch.Name = &name
		}
	}
	if v, ok := body["category"]; ok && v != nil {
		category := toString(v)
		patch.Category = &category
	}
	if v, ok := body["description"]; ok && v != nil {
		description := toString(v)
		patch.Description = &description
	}
	if v, ok := body["maps_query"]; ok && v != nil {
		mapsQuery := toString(v)
		patch.MapsQuery = &mapsQuery
	}
	if v, ok := body["latitude"]; ok {
		if v == nil || floatField(v) != nil {
			patch.SetLatitude = true
			patch.Latitude = floatField(v)
		}
	}
	if v, ok := body["longitude"]; ok {
		if v == nil || floatField(v) != nil {
			patch.SetLongitude = true
			patch.Longitude = floatField(v)
		}
	}

	loc, err := s.Locations.Update(id, patch)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	jsonResponse(w, http.StatusOK, LocationResponse{Location: loc, Status: "success"})
}

func (s *Server) deleteLocation(w http.ResponseWriter, r *http.Request, id string) {
	if !s.requireAdmin(r) {
		s.writeError(w, r, apperr.Unauthorized())
		return
	}
	if err := s.Locations.Delete(id); err != nil {
		s.writeError(w, r, err)
		return
	}
	jsonResponse(w, http.StatusOK, map[string]string{"status": "success"})
}

func stringField(body map[string]interface{}, key string) string {
	return toString(body[key])
}

func toString(v interface{}) string {
	s, _ := v.(string)
	return s
}

// floatField parses a latitude/longitude value leniently: JSON numbers and
// numeric strings are accepted, everything else yields nil.
func floatField(v interface{}) *float64 {
	switch val := v.(type) {
	case float64:
		return &val
	case string:
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			return &f
		}
	}
	return nil
}
