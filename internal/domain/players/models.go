package players

import "nba-companion-service/internal/domain/teams"

// Player is the normalized roster entry shape.
type Player struct {
	ID       string     `json:"id"`
	Name     string     `json:"name"`
	Position string     `json:"position,omitempty"`
	Jersey   string     `json:"jersey,omitempty"`
	Height   string     `json:"height,omitempty"`
	Weight   string     `json:"weight,omitempty"`
	Team     teams.Team `json:"team"`
}
