package providers

import (
	"context"

	domaingames "nba-companion-service/internal/domain/games"
	"nba-companion-service/internal/domain/news"
	"nba-companion-service/internal/domain/odds"
	"nba-companion-service/internal/domain/players"
	"nba-companion-service/internal/domain/teams"
)

// ScoreboardProvider fetches and normalizes today's games.
type ScoreboardProvider interface {
	FetchScoreboard(ctx context.Context) ([]domaingames.Game, error)
}

// OddsProvider fetches today's betting lines keyed by game ID.
type OddsProvider interface {
	FetchOdds(ctx context.Context) (map[string]odds.Line, error)
}

// DatedGamesProvider fetches normalized games for one calendar day.
// The date parameter is an 8-digit YYYYMMDD token.
type DatedGamesProvider interface {
	FetchGamesByDate(ctx context.Context, date string) ([]domaingames.Game, error)
}

// TeamProvider fetches the normalized team directory.
type TeamProvider interface {
	FetchTeams(ctx context.Context) ([]teams.Team, error)
}

// RosterProvider fetches a team's normalized roster.
type RosterProvider interface {
	FetchRoster(ctx context.Context, teamID string) ([]players.Player, error)
}

// NewsProvider fetches normalized news articles.
type NewsProvider interface {
	FetchNews(ctx context.Context) ([]news.Article, error)
}
