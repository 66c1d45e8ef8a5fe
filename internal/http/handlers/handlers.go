// Package handlers implements the JSON API surface.
package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	appschedule "nba-companion-service/internal/app/schedule"
	domaingames "nba-companion-service/internal/domain/games"
	domainnews "nba-companion-service/internal/domain/news"
	domainplayers "nba-companion-service/internal/domain/players"
	domainschedule "nba-companion-service/internal/domain/schedule"
	domainteams "nba-companion-service/internal/domain/teams"
	"nba-companion-service/internal/poller"
	"nba-companion-service/internal/view"
)

// GamesService reads the current games snapshot.
type GamesService interface {
	Games() []domaingames.Game
	GameByID(id string) (domaingames.Game, bool)
}

// TeamsService reads the current team directory.
type TeamsService interface {
	Teams() []domainteams.Team
	TeamByID(id string) (domainteams.Team, bool)
}

// NewsService reads the current news snapshot.
type NewsService interface {
	Articles() []domainnews.Article
}

// ScheduleService aggregates games across a date window.
type ScheduleService interface {
	Window(ctx context.Context, daysBefore, daysAfter int) ([]domainschedule.Day, error)
	TeamWindow(ctx context.Context, teamID string, daysBefore, daysAfter int) (domainschedule.TeamSchedule, error)
}

// RosterService fetches a team roster on demand.
type RosterService interface {
	FetchRoster(ctx context.Context, teamID string) ([]domainplayers.Player, error)
}

// ReadinessReporter exposes poller health for the readiness probe.
type ReadinessReporter interface {
	Status() poller.Status
}

// Handler serves the API endpoints.
type Handler struct {
	games      GamesService
	teams      TeamsService
	news       NewsService
	schedule   ScheduleService
	roster     RosterService
	readiness  ReadinessReporter
	daysBefore int
	daysAfter  int
	logger     *slog.Logger
}

// Config collects Handler dependencies.
type Config struct {
	Games      GamesService
	Teams      TeamsService
	News       NewsService
	Schedule   ScheduleService
	Roster     RosterService
	Readiness  ReadinessReporter
	DaysBefore int
	DaysAfter  int
	Logger     *slog.Logger
}

// New constructs a Handler.
func New(cfg Config) *Handler {
	return &Handler{
		games:      cfg.Games,
		teams:      cfg.Teams,
		news:       cfg.News,
		schedule:   cfg.Schedule,
		roster:     cfg.Roster,
		readiness:  cfg.Readiness,
		daysBefore: cfg.DaysBefore,
		daysAfter:  cfg.DaysAfter,
		logger:     cfg.Logger,
	}
}

// gameView decorates a canonical game with presentation fields.
type gameView struct {
	domaingames.Game
	DisplayTime string    `json:"displayTime,omitempty"`
	StatusTone  view.Tone `json:"statusTone"`
}

func toGameView(g domaingames.Game) gameView {
	v := gameView{Game: g, StatusTone: view.StatusTone(g.Status)}
	if g.StartTime != "" {
		v.DisplayTime = view.FormatGameTime(g.StartTime)
	}
	return v
}

func toGameViews(games []domaingames.Game) []gameView {
	views := make([]gameView, 0, len(games))
	for _, g := range games {
		views = append(views, toGameView(g))
	}
	return views
}

type dayView struct {
	Date  string     `json:"date"`
	Games []gameView `json:"games"`
}

// HandleGames returns today's games snapshot.
func (h *Handler) HandleGames(w http.ResponseWriter, r *http.Request) {
	games := h.games.Games()
	writeJSON(w, r, h.logger, http.StatusOK, map[string]any{
		"games": toGameViews(games),
		"count": len(games),
	})
}

// HandleGameByID returns one game from the snapshot.
func (h *Handler) HandleGameByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	game, ok := h.games.GameByID(id)
	if !ok {
		writeError(w, r, h.logger, http.StatusNotFound, "game not found")
		return
	}
	writeJSON(w, r, h.logger, http.StatusOK, toGameView(game))
}

// HandleSchedule returns the aggregated date window grouped by day.
func (h *Handler) HandleSchedule(w http.ResponseWriter, r *http.Request) {
	days, err := h.schedule.Window(r.Context(), h.daysBefore, h.daysAfter)
	if err != nil {
		if errors.Is(err, appschedule.ErrWindowUnavailable) {
			writeError(w, r, h.logger, http.StatusBadGateway, "schedule unavailable")
			return
		}
		writeError(w, r, h.logger, http.StatusInternalServerError, "internal error")
		return
	}

	views := make([]dayView, 0, len(days))
	for _, day := range days {
		views = append(views, dayView{Date: day.Date, Games: toGameViews(day.Games)})
	}
	writeJSON(w, r, h.logger, http.StatusOK, map[string]any{
		"days":      views,
		"gameCount": view.GameCount(days),
	})
}

// HandleTeams returns the team directory.
func (h *Handler) HandleTeams(w http.ResponseWriter, r *http.Request) {
	teams := h.teams.Teams()
	writeJSON(w, r, h.logger, http.StatusOK, map[string]any{
		"teams": teams,
		"count": len(teams),
	})
}

// HandleTeamByID returns one team from the directory.
func (h *Handler) HandleTeamByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	team, ok := h.teams.TeamByID(id)
	if !ok {
		writeError(w, r, h.logger, http.StatusNotFound, "team not found")
		return
	}
	writeJSON(w, r, h.logger, http.StatusOK, team)
}

// HandleTeamSchedule returns a team's window split into upcoming and past.
func (h *Handler) HandleTeamSchedule(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, ok := h.teams.TeamByID(id); !ok {
		writeError(w, r, h.logger, http.StatusNotFound, "team not found")
		return
	}

	sched, err := h.schedule.TeamWindow(r.Context(), id, h.daysBefore, h.daysAfter)
	if err != nil {
		if errors.Is(err, appschedule.ErrWindowUnavailable) {
			writeError(w, r, h.logger, http.StatusBadGateway, "schedule unavailable")
			return
		}
		writeError(w, r, h.logger, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, r, h.logger, http.StatusOK, map[string]any{
		"teamId":   sched.TeamID,
		"upcoming": toGameViews(sched.Upcoming),
		"past":     toGameViews(sched.Past),
		"tabs":     view.ScheduleTabCounts(sched),
	})
}

// HandleTeamRoster fetches the team's roster from the upstream.
func (h *Handler) HandleTeamRoster(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	players, err := h.roster.FetchRoster(r.Context(), id)
	if err != nil {
		writeError(w, r, h.logger, http.StatusBadGateway, "roster unavailable")
		return
	}
	writeJSON(w, r, h.logger, http.StatusOK, map[string]any{
		"teamId":  id,
		"players": players,
		"count":   len(players),
	})
}

// HandleNews returns the news snapshot.
func (h *Handler) HandleNews(w http.ResponseWriter, r *http.Request) {
	articles := h.news.Articles()
	writeJSON(w, r, h.logger, http.StatusOK, map[string]any{
		"articles": articles,
		"count":    len(articles),
	})
}

// HandleHealth is the liveness probe.
func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, h.logger, http.StatusOK, map[string]string{"status": "ok"})
}

// HandleReady is the readiness probe; it fails once the poller has been
// unable to refresh for several consecutive cycles.
func (h *Handler) HandleReady(w http.ResponseWriter, r *http.Request) {
	status := h.readiness.Status()
	if !status.IsReady() {
		writeJSON(w, r, h.logger, http.StatusServiceUnavailable, map[string]any{
			"status":              "unavailable",
			"consecutiveFailures": status.ConsecutiveFailures,
		})
		return
	}
	writeJSON(w, r, h.logger, http.StatusOK, map[string]string{"status": "ready"})
}
