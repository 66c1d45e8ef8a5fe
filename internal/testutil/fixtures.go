package testutil

import (
	domaingames "nba-companion-service/internal/domain/games"
	"nba-companion-service/internal/domain/teams"
)

// SampleTeam returns a minimal team fixture with the provided id.
func SampleTeam(id, abbreviation string) teams.Team {
	return teams.Team{
		ID:           id,
		Name:         "Team " + abbreviation,
		City:         "City " + abbreviation,
		Abbreviation: abbreviation,
	}
}

// SampleGame returns a minimal scheduled game fixture with the provided id.
func SampleGame(id string) domaingames.Game {
	return domaingames.Game{
		ID:        id,
		Date:      "2024-11-01",
		StartTime: "2024-11-01T19:00:00Z",
		Status:    domaingames.StatusScheduled,
		HomeTeam:  SampleTeam("home", "HME"),
		AwayTeam:  SampleTeam("away", "AWY"),
	}
}

// GameOn returns a scheduled game pinned to a specific date and start time.
func GameOn(id, date, startTime string) domaingames.Game {
	g := SampleGame(id)
	g.Date = date
	g.StartTime = startTime
	return g
}
