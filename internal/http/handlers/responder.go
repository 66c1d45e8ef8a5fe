package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"nba-companion-service/internal/http/middleware"
	"nba-companion-service/internal/logging"
)

type errorBody struct {
	Error     string `json:"error"`
	RequestID string `json:"requestId,omitempty"`
}

func writeJSON(w http.ResponseWriter, r *http.Request, logger *slog.Logger, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logging.Error(logger, "encode response", err,
			slog.String(logging.FieldPath, r.URL.Path),
		)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, status int, message string) {
	writeJSON(w, r, logger, status, errorBody{
		Error:     message,
		RequestID: middleware.RequestIDFromContext(r.Context()),
	})
}
