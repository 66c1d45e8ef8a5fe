// Package fixture is a deterministic in-memory provider for local
// development and tests, so the service runs without reaching any upstream.
package fixture

import (
	"context"

	domaingames "nba-companion-service/internal/domain/games"
	"nba-companion-service/internal/domain/news"
	"nba-companion-service/internal/domain/odds"
	"nba-companion-service/internal/domain/players"
	"nba-companion-service/internal/domain/teams"
)

// Provider serves canned data for every upstream contract.
type Provider struct{}

// New constructs the fixture provider.
func New() *Provider {
	return &Provider{}
}

func fixtureTeams() []teams.Team {
	return []teams.Team{
		{
			ID:           "1610612738",
			Name:         "Celtics",
			City:         "Boston",
			Abbreviation: "BOS",
			Conference:   "East",
			Division:     "Atlantic",
			Record:       &teams.Record{Wins: 48, Losses: 18},
		},
		{
			ID:           "1610612747",
			Name:         "Lakers",
			City:         "Los Angeles",
			Abbreviation: "LAL",
			Conference:   "West",
			Division:     "Pacific",
			Record:       &teams.Record{Wins: 39, Losses: 27},
		},
	}
}

func fixtureGames() []domaingames.Game {
	all := fixtureTeams()
	return []domaingames.Game{
		{
			ID:        "0022400001",
			Date:      "2025-01-15",
			StartTime: "2025-01-15T19:30:00Z",
			Status:    domaingames.StatusScheduled,
			HomeTeam:  all[0],
			AwayTeam:  all[1],
		},
	}
}

// FetchScoreboard returns the canned scoreboard.
func (p *Provider) FetchScoreboard(_ context.Context) ([]domaingames.Game, error) {
	return fixtureGames(), nil
}

// FetchOdds returns a single canned line keyed by the fixture game ID.
func (p *Provider) FetchOdds(_ context.Context) (map[string]odds.Line, error) {
	return map[string]odds.Line{
		"0022400001": {
			Spread:    &odds.Spread{Home: "-4.5", Away: "+4.5"},
			MoneyLine: &odds.MoneyLine{Home: "-180", Away: "+155"},
			Total:     &odds.Total{Points: "224.5", Over: "-110", Under: "-110"},
		},
	}, nil
}

// FetchGamesByDate returns the canned games with the date rewritten to the
// requested day so window aggregation stays coherent.
func (p *Provider) FetchGamesByDate(_ context.Context, date string) ([]domaingames.Game, error) {
	if len(date) != 8 {
		return nil, nil
	}
	day := date[:4] + "-" + date[4:6] + "-" + date[6:]
	games := fixtureGames()
	for i := range games {
		games[i].ID = games[i].ID + "-" + date
		games[i].Date = day
		games[i].StartTime = day + "T19:30:00Z"
	}
	return games, nil
}

// FetchTeams returns the canned team directory.
func (p *Provider) FetchTeams(_ context.Context) ([]teams.Team, error) {
	return fixtureTeams(), nil
}

// FetchRoster returns a canned roster for any known fixture team.
func (p *Provider) FetchRoster(_ context.Context, teamID string) ([]players.Player, error) {
	for _, t := range fixtureTeams() {
		if t.ID == teamID {
			return []players.Player{
				{ID: "203999", Name: "Sample Guard", Position: "G", Jersey: "7", Team: t},
			}, nil
		}
	}
	return nil, nil
}

// FetchNews returns a canned article.
func (p *Provider) FetchNews(_ context.Context) ([]news.Article, error) {
	return []news.Article{
		{
			ID:        "fixture-1",
			Headline:  "Season preview",
			Published: "2025-01-14T12:00:00Z",
			Link:      "https://example.com/season-preview",
		},
	}, nil
}
