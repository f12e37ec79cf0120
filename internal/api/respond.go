package api

import (
	"encoding/json"
	"net/http"

	"github.com/campus-assistant/backend/internal/apperr"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

func jsonResponse(w http.ResponseWriter, code int, payload interface{}) {
	response, _ := json.Marshal(payload)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

// writeError converts an application error into the structured error
// response, logging the detailed cause for the operator.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := apperr.CodeOf(err)
	status := httpStatus(code)
	if status >= http.StatusInternalServerError {
		s.Logger.WithError(err).Errorf("Request failed: %s %s", r.Method, r.URL.Path)
	}
	jsonResponse(w, status, ErrorResponse{Error: apperr.MessageOf(err)})
}

func httpStatus(code apperr.Code) int {
	switch code {
	case apperr.CodeValidation, apperr.CodeExtraction:
		return http.StatusBadRequest
	case apperr.CodeUnauthorized:
		return http.StatusUnauthorized
	case apperr.CodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
