package nbacdn

import (
	"strings"

	domaingames "nba-companion-service/internal/domain/games"
	"nba-companion-service/internal/domain/teams"
)

// Numeric status codes used by the live scoreboard feed.
const (
	statusCodeScheduled = 1
	statusCodeLive      = 2
	statusCodeFinal     = 3
)

// mapScoreboard normalizes the scoreboard payload. Records without a game ID
// are dropped and counted; every other malformed field degrades to its zero
// value without losing the record.
func mapScoreboard(payload scoreboardResponse) ([]domaingames.Game, int) {
	games := make([]domaingames.Game, 0, len(payload.Scoreboard.Games))
	dropped := 0

	for _, g := range payload.Scoreboard.Games {
		if strings.TrimSpace(g.GameID) == "" {
			dropped++
			continue
		}
		games = append(games, mapGame(g, payload.Scoreboard.GameDate))
	}

	return games, dropped
}

func mapGame(g scoreboardGame, feedDate string) domaingames.Game {
	game := domaingames.Game{
		ID:        g.GameID,
		Date:      gameDate(g.GameTimeUTC, feedDate),
		StartTime: g.GameTimeUTC,
		Status:    mapStatus(g.GameStatus),
		HomeTeam:  mapTeam(g.HomeTeam),
		AwayTeam:  mapTeam(g.AwayTeam),
	}

	if game.StartTime == "" {
		game.StartTime = g.GameStatusText
	}

	// Period and clock are only meaningful while live.
	if game.Status == domaingames.StatusLive {
		game.Period = g.Period
		game.Clock = g.GameClock
	}

	if game.Started() {
		home, away := g.HomeTeam.Score, g.AwayTeam.Score
		game.HomeScore = &home
		game.AwayScore = &away
	}

	return game
}

func mapTeam(t scoreboardTeam) teams.Team {
	team := resolveTeam(t.TeamID)
	if t.Wins > 0 || t.Losses > 0 {
		team.Record = &teams.Record{Wins: t.Wins, Losses: t.Losses}
	}
	return team
}

func mapStatus(code int) domaingames.Status {
	switch code {
	case statusCodeLive:
		return domaingames.StatusLive
	case statusCodeFinal:
		return domaingames.StatusFinal
	default:
		return domaingames.StatusScheduled
	}
}

// gameDate derives the calendar day from the game's own timestamp so a game
// returned under an adjacent-day request still groups correctly.
func gameDate(gameTimeUTC, feedDate string) string {
	if len(gameTimeUTC) >= 10 {
		return gameTimeUTC[:10]
	}
	return feedDate
}
