package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/campus-assistant/backend/internal/apperr"
	"github.com/campus-assistant/backend/internal/ingest"
	"github.com/campus-assistant/backend/internal/knowledge"
)

type KnowledgeListResponse struct {
	BuiltInCategories []string          `json:"built_in_categories"`
	AdminEntries      []knowledge.Entry `json:"admin_entries"`
	Status            string            `json:"status"`
}

type EntryResponse struct {
	Entry  knowledge.Entry `json:"entry"`
	Status string          `json:"status"`
}

type IngestResponse struct {
	Entry            knowledge.Entry `json:"entry"`
	Status           string          `json:"status"`
	ExtractedPreview string          `json:"extracted_preview"`
}

type entryRequest struct {
	Title     string   `json:"title"`
	Keywords  []string `json:"keywords"`
	Responses []string `json:"responses"`
	Response  string   `json:"response"`
}

type entryPatchRequest struct {
	Title     *string  `json:"title"`
	Keywords  []string `json:"keywords"`
	Responses []string `json:"responses"`
}

func (s *Server) handleKnowledge(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.listKnowledge(w, r)
	case http.MethodPost:
		s.createKnowledge(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (s *Server) listKnowledge(w http.ResponseWriter, r *http.Request) {
	categories := knowledge.BuiltIn()
	names := make([]string, len(categories))
	for i, c := range categories {
		names[i] = c.Name
	}

	entries := s.Knowledge.All()
	if entries == nil {
		entries = []knowledge.Entry{}
	}

	jsonResponse(w, http.StatusOK, KnowledgeListResponse{
		BuiltInCategories: names,
		AdminEntries:      entries,
		Status:            "success",
	})
}

func (s *Server) createKnowledge(w http.ResponseWriter, r *http.Request) {
	if !s.requireAdmin(r) {
		s.writeError(w, r, apperr.Unauthorized())
		return
	}

	var req entryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, r, apperr.Validation("Invalid JSON"))
		return
	}

	responses := req.Responses
	if len(responses) == 0 && req.Response != "" {
		responses = []string{req.Response}
	}
	if len(req.Keywords) == 0 {
		s.writeError(w, r, apperr.Validation("keywords must be a non-empty array"))
		return
	}
	if len(responses) == 0 {
		s.writeError(w, r, apperr.Validation("responses must be a non-empty array"))
		return
	}

	entry, err := s.Knowledge.Add(knowledge.Entry{
		Title:     req.Title,
		Keywords:  req.Keywords,
		Responses: responses,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	jsonResponse(w, http.StatusOK, EntryResponse{Entry: entry, Status: "success"})
}

// handleKnowledgeItem routes /api/knowledge/{id} updates and the
// /api/knowledge/document upload endpoint.
func (s *Server) handleKnowledgeItem(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/api/knowledge/")
	if rest == "document" {
		s.uploadDocument(w, r)
		return
	}
	if rest == "" || strings.Contains(rest, "/") {
		http.NotFound(w, r)
		return
	}

	switch r.Method {
	case http.MethodPut:
		s.updateKnowledge(w, r, rest)
	case http.MethodDelete:
		s.deleteKnowledge(w, r, rest)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (s *Server) updateKnowledge(w http.ResponseWriter, r *http.Request, id string) {
	if !s.requireAdmin(r) {
		s.writeError(w, r, apperr.Unauthorized())
		return
	}

	var req entryPatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, r, apperr.Validation("Invalid JSON"))
		return
	}

	entry, err := s.Knowledge.Update(id, knowledge.EntryPatch{
		Title:     req.Title,
		Keywords:  req.Keywords,
		Responses: req.Responses,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	jsonResponse(w, http.StatusOK, EntryResponse{Entry: entry, Status: "success"})
}

func (s *Server) deleteKnowledge(w http.ResponseWriter, r *http.Request, id string) {
	if !s.requireAdmin(r) {
		s.writeError(w, r, apperr.Unauthorized())
		return
	}
	if err := s.Knowledge.Delete(id); err != nil {
		s.writeError(w, r, err)
		return
	}
	jsonResponse(w, http.StatusOK, map[string]string{"status": "success"})
}

func (s *Server) uploadDocument(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if !s.requireAdmin(r) {
		s.writeError(w, r, apperr.Unauthorized())
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		s.writeError(w, r, apperr.Validation("No file uploaded"))
		return
	}
	defer file.Close()

	if header.Filename == "" {
		s.writeError(w, r, apperr.Validation("Empty file"))
		return
	}
	if !ingest.SupportedExtension(header.Filename) {
		s.writeError(w, r, apperr.Validation("Unsupported file type: only PDF, TXT, MD, and HTML documents are supported"))
		return
	}

	stored, path, err := s.Uploads.Save(header.Filename, file)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	result, err := s.Pipeline.Ingest(path, stored, r.FormValue("title"), r.FormValue("keywords"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	jsonResponse(w, http.StatusOK, IngestResponse{
		Entry:            result.Entry,
		Status:           "success",
		ExtractedPreview: result.Preview,
	})
}
