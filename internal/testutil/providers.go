package testutil

import (
	"context"

	domaingames "nba-companion-service/internal/domain/games"
	"nba-companion-service/internal/domain/news"
	"nba-companion-service/internal/domain/odds"
	"nba-companion-service/internal/domain/teams"
)

// StubScoreboard returns canned games or a fixed error.
type StubScoreboard struct {
	Games []domaingames.Game
	Err   error
	Calls int
}

func (s *StubScoreboard) FetchScoreboard(context.Context) ([]domaingames.Game, error) {
	s.Calls++
	return s.Games, s.Err
}

// StubOdds returns canned lines or a fixed error.
type StubOdds struct {
	Lines map[string]odds.Line
	Err   error
}

func (s *StubOdds) FetchOdds(context.Context) (map[string]odds.Line, error) {
	return s.Lines, s.Err
}

// StubTeams returns canned teams or a fixed error.
type StubTeams struct {
	Teams []teams.Team
	Err   error
}

func (s *StubTeams) FetchTeams(context.Context) ([]teams.Team, error) {
	return s.Teams, s.Err
}

// StubNews returns canned articles or a fixed error.
type StubNews struct {
	Articles []news.Article
	Err      error
}

func (s *StubNews) FetchNews(context.Context) ([]news.Article, error) {
	return s.Articles, s.Err
}

// StubDatedGames maps YYYYMMDD tokens to responses and records the request
// order. Dates present in Failures return that error instead.
type StubDatedGames struct {
	ByDate    map[string][]domaingames.Game
	Failures  map[string]error
	Requested []string
}

func (s *StubDatedGames) FetchGamesByDate(_ context.Context, date string) ([]domaingames.Game, error) {
	s.Requested = append(s.Requested, date)
	if err, ok := s.Failures[date]; ok {
		return nil, err
	}
	return s.ByDate[date], nil
}
