package espn

import (
	"errors"
	"strconv"
	"strings"

	domaingames "nba-companion-service/internal/domain/games"
	"nba-companion-service/internal/domain/odds"
	"nba-companion-service/internal/domain/players"
	"nba-companion-service/internal/domain/teams"
)

const fallbackLogoTemplate = "https://a.espncdn.com/i/teamlogos/nba/500/"

var errSummaryMissingID = errors.New("espn: summary payload missing event id")

// mapTeams normalizes the team directory. Entries without an ID are dropped
// and counted; any other malformed field degrades without losing the entry.
func mapTeams(payload teamsResponse) ([]teams.Team, int) {
	var list []teams.Team
	dropped := 0

	for _, sport := range payload.Sports {
		for _, league := range sport.Leagues {
			for _, entry := range league.Teams {
				if strings.TrimSpace(entry.Team.ID) == "" {
					dropped++
					continue
				}
				list = append(list, mapTeamDetail(entry.Team))
			}
		}
	}

	return list, dropped
}

func mapTeamDetail(t teamDetail) teams.Team {
	team := teams.Team{
		ID:           t.ID,
		Name:         t.Name,
		City:         t.Location,
		Abbreviation: t.Abbreviation,
		LogoURL:      teamLogo(t.Logos, t.ID),
	}

	if item, ok := totalRecordItem(t.Record.Items); ok {
		team.Record = parseRecordSummary(item.Summary)
		team.Standing = parseStanding(item.Stats)
	}

	return team
}

func teamLogo(logos []logo, teamID string) string {
	for _, l := range logos {
		if l.Href != "" {
			return l.Href
		}
	}
	// The upstream occasionally ships an empty logos array; the CDN location
	// is deterministic from the team ID.
	return fallbackLogoTemplate + teamID + ".png"
}

func totalRecordItem(items []recordItem) (recordItem, bool) {
	for _, item := range items {
		if item.Type == "total" {
			return item, true
		}
	}
	if len(items) > 0 {
		return items[0], true
	}
	return recordItem{}, false
}

// parseRecordSummary reads a "W-L" summary like "24-12".
func parseRecordSummary(summary string) *teams.Record {
	parts := strings.SplitN(strings.TrimSpace(summary), "-", 2)
	if len(parts) != 2 {
		return nil
	}
	wins, errW := strconv.Atoi(parts[0])
	losses, errL := strconv.Atoi(parts[1])
	if errW != nil || errL != nil {
		return nil
	}
	return &teams.Record{Wins: wins, Losses: losses}
}

func parseStanding(stats []statEntry) *teams.Standing {
	var standing teams.Standing
	found := false
	for _, s := range stats {
		switch s.Name {
		case "playoffSeed":
			standing.ConferenceRank = int(s.Value)
			found = true
		case "divisionRank":
			standing.DivisionRank = int(s.Value)
			found = true
		}
	}
	if !found {
		return nil
	}
	return &standing
}

// mapRoster normalizes roster athletes onto the given team. Athletes without
// an ID are dropped and counted.
func mapRoster(payload rosterResponse, team teams.Team) ([]players.Player, int) {
	roster := make([]players.Player, 0, len(payload.Athletes))
	dropped := 0

	for _, a := range payload.Athletes {
		if strings.TrimSpace(a.ID) == "" {
			dropped++
			continue
		}
		roster = append(roster, players.Player{
			ID:       a.ID,
			Name:     a.DisplayName,
			Position: a.Position.Abbreviation,
			Jersey:   a.Jersey,
			Height:   a.DisplayHeight,
			Weight:   a.DisplayWeight,
			Team:     team,
		})
	}

	return roster, dropped
}

// mapEvents normalizes scoreboard events. Events without an ID are dropped
// and counted.
func mapEvents(events []event) ([]domaingames.Game, int) {
	games := make([]domaingames.Game, 0, len(events))
	dropped := 0

	for _, e := range events {
		if strings.TrimSpace(e.ID) == "" {
			dropped++
			continue
		}
		games = append(games, mapEvent(e))
	}

	return games, dropped
}

func mapEvent(e event) domaingames.Game {
	game := domaingames.Game{
		ID:        e.ID,
		Date:      eventDate(e.Date),
		StartTime: e.Date,
		Status:    mapEventState(e.Status.Type.State),
	}

	if game.Status == domaingames.StatusLive {
		game.Period = e.Status.Period
		game.Clock = e.Status.DisplayClock
	}

	if len(e.Competitions) == 0 {
		return game
	}
	comp := e.Competitions[0]

	for _, c := range comp.Competitors {
		switch c.HomeAway {
		case "home":
			game.HomeTeam = mapEventTeam(c)
			if game.Started() {
				game.HomeScore = parseScore(c.Score)
			}
		case "away":
			game.AwayTeam = mapEventTeam(c)
			if game.Started() {
				game.AwayScore = parseScore(c.Score)
			}
		}
	}

	// Lines only attach to games that have not started.
	if game.Status == domaingames.StatusScheduled && len(comp.Odds) > 0 {
		if line := mapCompetitionOdds(comp.Odds[0]); !line.Empty() {
			game.Odds = &line
		}
	}

	return game
}

func mapSummary(payload summaryResponse) (domaingames.Game, error) {
	if strings.TrimSpace(payload.Header.ID) == "" {
		return domaingames.Game{}, errSummaryMissingID
	}
	if len(payload.Header.Competitions) == 0 {
		return domaingames.Game{ID: payload.Header.ID}, nil
	}

	comp := payload.Header.Competitions[0]
	return mapEvent(event{
		ID:           payload.Header.ID,
		Date:         comp.Date,
		Status:       comp.Status,
		Competitions: []competition{comp},
	}), nil
}

func mapEventTeam(c competitor) teams.Team {
	t := c.Team
	team := teams.Team{
		ID:           t.ID,
		Name:         t.Name,
		City:         t.Location,
		Abbreviation: t.Abbreviation,
		LogoURL:      competitorLogo(t),
	}

	for _, r := range c.Records {
		if r.Type == "total" || r.Name == "overall" {
			team.Record = parseRecordSummary(r.Summary)
			break
		}
	}

	return team
}

func competitorLogo(t eventTeam) string {
	if t.Logo != "" {
		return t.Logo
	}
	return teamLogo(t.Logos, t.ID)
}

func parseScore(raw string) *int {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return nil
	}
	return &v
}

func mapEventState(state string) domaingames.Status {
	switch strings.ToLower(state) {
	case "in":
		return domaingames.StatusLive
	case "post":
		return domaingames.StatusFinal
	default:
		return domaingames.StatusScheduled
	}
}

// mapCompetitionOdds converts the flat odds block the scoreboard feed
// carries (one pre-picked book) into a canonical line.
func mapCompetitionOdds(o oddsEntry) odds.Line {
	var line odds.Line

	if o.HomeTeamOdds.Moneyline != 0 && o.AwayTeamOdds.Moneyline != 0 {
		line.MoneyLine = &odds.MoneyLine{
			Home: odds.FormatAmerican(o.HomeTeamOdds.Moneyline),
			Away: odds.FormatAmerican(o.AwayTeamOdds.Moneyline),
		}
	}

	if o.Spread != 0 {
		line.Spread = &odds.Spread{
			Home: formatSignedFloat(o.Spread),
			Away: formatSignedFloat(-o.Spread),
		}
	}

	if o.OverUnder > 0 {
		line.Total = &odds.Total{
			Points: strconv.FormatFloat(o.OverUnder, 'f', -1, 64),
			Over:   odds.FormatAmerican(o.OverOdds),
			Under:  odds.FormatAmerican(o.UnderOdds),
		}
	}

	return line
}

func formatSignedFloat(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if v > 0 {
		return "+" + s
	}
	return s
}

func eventDate(raw string) string {
	if len(raw) >= 10 {
		return raw[:10]
	}
	return raw
}
