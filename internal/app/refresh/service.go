package refresh

import (
	"context"
	"log/slog"
	"sync"
	"time"

	domaingames "nba-companion-service/internal/domain/games"
	domainnews "nba-companion-service/internal/domain/news"
	"nba-companion-service/internal/domain/odds"
	domainteams "nba-companion-service/internal/domain/teams"
	"nba-companion-service/internal/logging"
	"nba-companion-service/internal/metrics"
	"nba-companion-service/internal/providers"
)

const (
	resourceScoreboard = "scoreboard"
	resourceOdds       = "odds"
	resourceTeams      = "teams"
	resourceNews       = "news"
)

// Store is the generation-tagged snapshot the refresh commits into.
type Store interface {
	BeginRefresh() uint64
	SetGames(gen uint64, games []domaingames.Game) bool
	SetTeams(gen uint64, list []domainteams.Team) bool
	SetArticles(gen uint64, articles []domainnews.Article) bool
}

// Service rebuilds the whole snapshot from the upstream feeds. One refresh
// is one logical operation: independent resources are fetched concurrently,
// and each resource's failure is isolated to its own section.
type Service struct {
	scoreboard providers.ScoreboardProvider
	odds       providers.OddsProvider
	teams      providers.TeamProvider
	news       providers.NewsProvider
	store      Store
	logger     *slog.Logger
	metrics    *metrics.Recorder
}

// NewService constructs a refresh Service.
func NewService(scoreboard providers.ScoreboardProvider, oddsProvider providers.OddsProvider, teamProvider providers.TeamProvider, newsProvider providers.NewsProvider, store Store, logger *slog.Logger, recorder *metrics.Recorder) *Service {
	return &Service{
		scoreboard: scoreboard,
		odds:       oddsProvider,
		teams:      teamProvider,
		news:       newsProvider,
		store:      store,
		logger:     logger,
		metrics:    recorder,
	}
}

// Refresh fetches all resources and commits a fresh snapshot. The scoreboard
// is the primary resource: its failure fails the refresh. Odds, teams and
// news are secondary and degrade silently. A commit whose generation has
// been superseded by a newer refresh is discarded.
func (s *Service) Refresh(ctx context.Context) error {
	gen := s.store.BeginRefresh()

	var (
		wg sync.WaitGroup

		games    []domaingames.Game
		gamesErr error

		lines   map[string]odds.Line
		oddsErr error

		teamList []domainteams.Team
		teamsErr error

		articles []domainnews.Article
		newsErr  error
	)

	wg.Add(1)
	go func() {
		defer wg.Done()
		games, gamesErr = s.timed(ctx, resourceScoreboard, func(ctx context.Context) ([]domaingames.Game, error) {
			return s.scoreboard.FetchScoreboard(ctx)
		})
	}()

	if s.odds != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			start := time.Now()
			lines, oddsErr = s.odds.FetchOdds(ctx)
			s.metrics.RecordFetch(resourceOdds, time.Since(start), oddsErr)
		}()
	}

	if s.teams != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			start := time.Now()
			teamList, teamsErr = s.teams.FetchTeams(ctx)
			s.metrics.RecordFetch(resourceTeams, time.Since(start), teamsErr)
		}()
	}

	if s.news != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			start := time.Now()
			articles, newsErr = s.news.FetchNews(ctx)
			s.metrics.RecordFetch(resourceNews, time.Since(start), newsErr)
		}()
	}

	wg.Wait()

	if gamesErr != nil {
		return gamesErr
	}

	if oddsErr != nil {
		logging.Warn(s.logger, "odds unavailable, serving games without lines", logging.FieldResource, resourceOdds, "error", oddsErr)
	} else {
		games = attachLines(games, lines)
	}

	if !s.store.SetGames(gen, games) {
		logging.Info(s.logger, "stale refresh discarded", "generation", gen)
		return nil
	}

	if teamsErr != nil {
		logging.Warn(s.logger, "team directory unavailable, keeping previous snapshot", logging.FieldResource, resourceTeams, "error", teamsErr)
	} else {
		s.store.SetTeams(gen, teamList)
	}

	if newsErr != nil {
		logging.Warn(s.logger, "news unavailable, keeping previous snapshot", logging.FieldResource, resourceNews, "error", newsErr)
	} else {
		s.store.SetArticles(gen, articles)
	}

	logging.Info(s.logger, "refresh complete", logging.FieldCount, len(games), "generation", gen)
	return nil
}

func (s *Service) timed(ctx context.Context, resource string, fn func(context.Context) ([]domaingames.Game, error)) ([]domaingames.Game, error) {
	start := time.Now()
	games, err := fn(ctx)
	s.metrics.RecordFetch(resource, time.Since(start), err)
	return games, err
}

// attachLines pairs betting lines with the games that have not started.
// Games are copied; the input slice is never mutated in place elsewhere.
func attachLines(games []domaingames.Game, lines map[string]odds.Line) []domaingames.Game {
	if len(lines) == 0 {
		return games
	}
	out := make([]domaingames.Game, len(games))
	for i, g := range games {
		if line, ok := lines[g.ID]; ok && g.Status == domaingames.StatusScheduled && !line.Empty() {
			l := line
			g.Odds = &l
		}
		out[i] = g
	}
	return out
}
