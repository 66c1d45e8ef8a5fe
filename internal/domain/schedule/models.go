package schedule

import "nba-companion-service/internal/domain/games"

// Day groups the games of one calendar date, ordered by start time ascending.
type Day struct {
	Date  string       `json:"date"`
	Games []games.Game `json:"games"`
}

// TeamSchedule splits a team's games around "now": upcoming ascending,
// past descending (most recent first).
type TeamSchedule struct {
	TeamID   string       `json:"teamId"`
	Upcoming []games.Game `json:"upcoming"`
	Past     []games.Game `json:"past"`
}
