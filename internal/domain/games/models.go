package games

import (
	"time"

	"nba-companion-service/internal/domain/odds"
	"nba-companion-service/internal/domain/teams"
)

// Status mirrors the shared contract for game lifecycle states.
// Transitions are monotonic (Scheduled -> Live -> Final) and taken verbatim
// from the upstream; nothing here infers a transition.
type Status string

const (
	StatusScheduled Status = "SCHEDULED"
	StatusLive      Status = "LIVE"
	StatusFinal     Status = "FINAL"
)

// Game is the canonical game shape exposed by the service.
// Teams are embedded by value so a refresh never aliases shared state.
type Game struct {
	ID        string     `json:"id"`
	Date      string     `json:"date"`
	StartTime string     `json:"startTime"`
	Status    Status     `json:"status"`
	Period    int        `json:"period,omitempty"`
	Clock     string     `json:"clock,omitempty"`
	HomeTeam  teams.Team `json:"homeTeam"`
	AwayTeam  teams.Team `json:"awayTeam"`
	HomeScore *int       `json:"homeScore,omitempty"`
	AwayScore *int       `json:"awayScore,omitempty"`
	Odds      *odds.Line `json:"odds,omitempty"`
}

// Started reports whether the game has begun (scores are meaningful).
func (g Game) Started() bool {
	return g.Status == StatusLive || g.Status == StatusFinal
}

// HasTeam reports whether the team appears on either side.
func (g Game) HasTeam(teamID string) bool {
	return g.HomeTeam.ID == teamID || g.AwayTeam.ID == teamID
}

var startLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04:05Z",
}

// StartAt parses the game's start time token. The second return is false
// when the token does not carry a parseable timestamp.
func (g Game) StartAt() (time.Time, bool) {
	for _, layout := range startLayouts {
		if t, err := time.Parse(layout, g.StartTime); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
