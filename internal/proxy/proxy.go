// Package proxy implements a small CORS pass-through in front of the NBA
// odds feed, for browser clients that cannot call the CDN directly.
package proxy

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"nba-companion-service/internal/logging"
)

const upstreamTimeout = 10 * time.Second

// Handler forwards one route to the configured upstream feed.
type Handler struct {
	upstreamURL string
	client      *http.Client
	logger      *slog.Logger
}

// New constructs the proxy handler. A nil client gets a default with the
// standard upstream timeout.
func New(upstreamURL string, client *http.Client, logger *slog.Logger) *Handler {
	if client == nil {
		client = &http.Client{Timeout: upstreamTimeout}
	}
	return &Handler{
		upstreamURL: upstreamURL,
		client:      client,
		logger:      logger,
	}
}

// Router builds the proxy's route table with permissive CORS.
func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"*"},
	}))
	r.Get("/api/nba/games", h.handleGames)
	return r
}

func (h *Handler) handleGames(w http.ResponseWriter, r *http.Request) {
	req, err := http.NewRequestWithContext(r.Context(), http.MethodGet, h.upstreamURL, nil)
	if err != nil {
		h.fail(w, err)
		return
	}

	resp, err := h.client.Do(req)
	if err != nil {
		h.fail(w, err)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		h.fail(w, fmt.Errorf("upstream status %d", resp.StatusCode))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := io.Copy(w, resp.Body); err != nil {
		logging.Error(h.logger, "copy upstream body", err)
	}
}

func (h *Handler) fail(w http.ResponseWriter, err error) {
	logging.Error(h.logger, "proxy upstream fetch", err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusInternalServerError)
	_, _ = w.Write([]byte(`{"error":"Failed to fetch NBA data"}`))
}
