package api

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/campus-assistant/backend/internal/assistant"
)

type ChatRequest struct {
	Message string `json:"message"`
}

type ChatResponse struct {
	Reply     string            `json:"reply"`
	Source    *assistant.Source `json:"source"`
	Timestamp time.Time         `json:"timestamp"`
	Status    string            `json:"status"`
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonResponse(w, http.StatusBadRequest, ErrorResponse{Error: "Message is required"})
		return
	}

	message := strings.TrimSpace(req.Message)
	if message == "" {
		jsonResponse(w, http.StatusBadRequest, ErrorResponse{Error: "Message cannot be empty"})
		return
	}

	reply := s.Assistant.Reply(message)

	s.Logger.Infof("User: %s", message)
	s.Logger.Infof("Bot: %s", truncate(reply.Text, 100))

	jsonResponse(w, http.StatusOK, ChatResponse{
		Reply:     reply.Text,
		Source:    reply.Source,
		Timestamp: time.Now(),
		Status:    "success",
	})
}

func truncate(text string, max int) string {
	runes := []rune(text)
	if len(runes) > max {
		return string(runes[:max]) + "..."
	}
	return text
}
