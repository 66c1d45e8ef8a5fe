// Package view derives presentation-ready values from canonical entities.
// Everything here is a pure function; nothing fetches or caches.
package view

import (
	"time"

	domaingames "nba-companion-service/internal/domain/games"
	"nba-companion-service/internal/domain/odds"
	domainschedule "nba-companion-service/internal/domain/schedule"
)

// Tone classifies a game status for display styling.
type Tone string

const (
	ToneUrgent  Tone = "urgent"
	ToneSuccess Tone = "success"
	ToneNeutral Tone = "neutral"
)

// StatusTone maps a game status to its display tone. Unknown statuses fall
// back to neutral so a new upstream code degrades instead of breaking.
func StatusTone(status domaingames.Status) Tone {
	switch status {
	case domaingames.StatusLive:
		return ToneUrgent
	case domaingames.StatusFinal:
		return ToneSuccess
	default:
		return ToneNeutral
	}
}

var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04Z07:00",
	"15:04",
}

// FormatGameTime renders a raw time token as "h:mm AM/PM". Tokens that do
// not parse are returned unchanged rather than erroring.
func FormatGameTime(token string) string {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, token); err == nil {
			return t.Format("3:04 PM")
		}
	}
	return token
}

// FormatOdds renders an American odds value ("+150", "-110", "0").
func FormatOdds(v int) string {
	return odds.FormatAmerican(v)
}

// GameCount totals the games across a day sequence. Recomputed on every
// call; the collections it reads are replaced wholesale per refresh.
func GameCount(days []domainschedule.Day) int {
	total := 0
	for _, day := range days {
		total += len(day.Games)
	}
	return total
}

// TabCounts summarizes a team schedule for its tab headers.
type TabCounts struct {
	Upcoming int `json:"upcoming"`
	Past     int `json:"past"`
}

// ScheduleTabCounts derives the tab counts for a team schedule.
func ScheduleTabCounts(s domainschedule.TeamSchedule) TabCounts {
	return TabCounts{
		Upcoming: len(s.Upcoming),
		Past:     len(s.Past),
	}
}
