package api

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/campus-assistant/backend/internal/assistant"
	"github.com/campus-assistant/backend/internal/config"
	"github.com/campus-assistant/backend/internal/ingest"
	"github.com/campus-assistant/backend/internal/knowledge"
	"github.com/campus-assistant/backend/internal/locations"
	"github.com/campus-assistant/backend/internal/storage"
)

type Server struct {
	Assistant *assistant.Assistant
	Knowledge *knowledge.Store
	Locations *locations.Store
	Pipeline  *ingest.Pipeline
	Uploads   *storage.UploadDir
	Logger    *logrus.Entry
	Router    http.Handler

	adminToken string
}

func NewServer(
	asst *assistant.Assistant,
	kn *knowledge.Store,
	loc *locations.Store,
	pipe *ingest.Pipeline,
	uploads *storage.UploadDir,
	cfg *config.Config,
	logger *logrus.Entry,
) *Server {
	s := &Server{
		Assistant:  asst,
		Knowledge:  kn,
		Locations:  loc,
		Pipeline:   pipe,
		Uploads:    uploads,
		Logger:     logger,
		adminToken: cfg.Server.AdminToken,
	}
	mux := http.NewServeMux()
	s.routes(mux)
	s.Router = corsMiddleware(cfg.Server.CORSAllowedOrigin, mux)
	return s
}

func (s *Server) routes(mux *http.ServeMux) {
	mux.HandleFunc("/api/chat", s.handleChat)
	mux.HandleFunc("/api/knowledge", s.handleKnowledge)
	mux.HandleFunc("/api/knowledge/", s.handleKnowledgeItem)
	mux.HandleFunc("/api/locations", s.handleLocations)
	mux.HandleFunc("/api/locations/", s.handleLocationItem)
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/stats", s.handleStats)
	mux.HandleFunc("/api/clear-history", s.handleClearHistory)
}

func (s *Server) Start(port string) error {
	s.Logger.Infof("Starting API Server on %s", port)
	return http.ListenAndServe(port, s.Router)
}

// requireAdmin checks the shared-secret token from the X-Admin-Token header
// or the admin_token query parameter.
func (s *Server) requireAdmin(r *http.Request) bool {
	token := r.Header.Get("X-Admin-Token")
	if token == "" {
		token = r.URL.Query().Get("admin_token")
	}
	return token == s.adminToken
}
