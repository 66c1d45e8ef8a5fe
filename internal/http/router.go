// Package http assembles the API router.
package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"nba-companion-service/internal/http/handlers"
	"nba-companion-service/internal/http/middleware"
	"nba-companion-service/internal/metrics"
)

// RouterConfig collects the router dependencies.
type RouterConfig struct {
	Handler *handlers.Handler
	Logger  *slog.Logger
	Metrics *metrics.Recorder
}

// NewRouter wires the middleware chain and routes.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Observe(cfg.Logger, cfg.Metrics))

	h := cfg.Handler
	r.Get("/health", h.HandleHealth)
	r.Get("/ready", h.HandleReady)
	r.Get("/games", h.HandleGames)
	r.Get("/games/{id}", h.HandleGameByID)
	r.Get("/schedule", h.HandleSchedule)
	r.Get("/teams", h.HandleTeams)
	r.Get("/teams/{id}", h.HandleTeamByID)
	r.Get("/teams/{id}/schedule", h.HandleTeamSchedule)
	r.Get("/teams/{id}/roster", h.HandleTeamRoster)
	r.Get("/news", h.HandleNews)

	return r
}
