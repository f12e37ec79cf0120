package api

import (
	"net/http"
	"time"
)

type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Service   string    `json:"service"`
}

type StatsResponse struct {
	TotalConversations int        `json:"total_conversations"`
	LastActivity       *time.Time `json:"last_activity"`
	Status             string     `json:"status"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	jsonResponse(w, http.StatusOK, HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now(),
		Service:   "Campus Assistant API",
	})
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	history := s.Assistant.History()

	resp := StatsResponse{
		// A conversation is one user turn plus one bot turn.
		TotalConversations: history.Len() / 2,
		Status:             "success",
	}
	if last, ok := history.Last(); ok {
		resp.LastActivity = &last.Timestamp
	}
	jsonResponse(w, http.StatusOK, resp)
}

func (s *Server) handleClearHistory(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	s.Assistant.History().Clear()
	s.Logger.Info("Conversation history cleared")
	jsonResponse(w, http.StatusOK, map[string]string{
		"message": "History cleared successfully",
		"status":  "success",
	})
}
