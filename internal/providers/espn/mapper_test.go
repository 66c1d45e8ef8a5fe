package espn

import (
	"testing"

	domaingames "nba-companion-service/internal/domain/games"
)

func sampleEvent(id, state string) event {
	return event{
		ID:   id,
		Date: "2024-11-01T23:00:00Z",
		Status: eventStatus{
			Type:         statusType{State: state},
			Period:       2,
			DisplayClock: "5:30",
		},
		Competitions: []competition{{
			Competitors: []competitor{
				{
					HomeAway: "home",
					Score:    "54",
					Team:     eventTeam{ID: "2", Location: "Boston", Name: "Celtics", Abbreviation: "BOS", Logo: "https://a.espncdn.com/bos.png"},
					Records:  []recordSummary{{Type: "total", Summary: "24-12"}},
				},
				{
					HomeAway: "away",
					Score:    "50",
					Team:     eventTeam{ID: "13", Location: "Los Angeles", Name: "Lakers", Abbreviation: "LAL"},
				},
			},
			Odds: []oddsEntry{{
				Spread:       -4.5,
				OverUnder:    224.5,
				OverOdds:     -110,
				UnderOdds:    -110,
				HomeTeamOdds: teamOdds{Moneyline: -180},
				AwayTeamOdds: teamOdds{Moneyline: 155},
			}},
		}},
	}
}

func TestMapEventsDropsEventsWithoutID(t *testing.T) {
	games, dropped := mapEvents([]event{
		sampleEvent("401585601", "pre"),
		sampleEvent("", "pre"),
	})
	if len(games) != 1 || dropped != 1 {
		t.Fatalf("expected 1 game and 1 dropped, got %d and %d", len(games), dropped)
	}
}

func TestMapEventStates(t *testing.T) {
	tests := []struct {
		state string
		want  domaingames.Status
	}{
		{"pre", domaingames.StatusScheduled},
		{"in", domaingames.StatusLive},
		{"post", domaingames.StatusFinal},
		{"halftime", domaingames.StatusScheduled},
	}

	for _, tt := range tests {
		if got := mapEventState(tt.state); got != tt.want {
			t.Fatalf("mapEventState(%q) = %s, want %s", tt.state, got, tt.want)
		}
	}
}

func TestMapEventScheduled(t *testing.T) {
	g := mapEvent(sampleEvent("401585601", "pre"))

	if g.Status != domaingames.StatusScheduled {
		t.Fatalf("unexpected status %s", g.Status)
	}
	if g.Date != "2024-11-01" {
		t.Fatalf("unexpected date %q", g.Date)
	}
	if g.HomeScore != nil || g.AwayScore != nil {
		t.Fatal("expected no scores before tip-off")
	}
	if g.Period != 0 || g.Clock != "" {
		t.Fatal("expected no period/clock before tip-off")
	}

	if g.Odds == nil {
		t.Fatal("expected odds on a scheduled game")
	}
	if g.Odds.MoneyLine.Home != "-180" || g.Odds.MoneyLine.Away != "+155" {
		t.Fatalf("unexpected money line %+v", g.Odds.MoneyLine)
	}
	if g.Odds.Spread.Home != "-4.5" || g.Odds.Spread.Away != "+4.5" {
		t.Fatalf("unexpected spread %+v", g.Odds.Spread)
	}
	if g.Odds.Total.Points != "224.5" {
		t.Fatalf("unexpected total %+v", g.Odds.Total)
	}
}

func TestMapEventLive(t *testing.T) {
	g := mapEvent(sampleEvent("401585601", "in"))

	if g.Status != domaingames.StatusLive {
		t.Fatalf("unexpected status %s", g.Status)
	}
	if g.HomeScore == nil || *g.HomeScore != 54 || g.AwayScore == nil || *g.AwayScore != 50 {
		t.Fatalf("unexpected scores %v %v", g.HomeScore, g.AwayScore)
	}
	if g.Period != 2 || g.Clock != "5:30" {
		t.Fatalf("unexpected period/clock %d %q", g.Period, g.Clock)
	}
	if g.Odds != nil {
		t.Fatal("expected no odds once the game started")
	}
}

func TestMapEventTeamFields(t *testing.T) {
	g := mapEvent(sampleEvent("401585601", "pre"))

	home := g.HomeTeam
	if home.ID != "2" || home.City != "Boston" || home.Name != "Celtics" || home.Abbreviation != "BOS" {
		t.Fatalf("unexpected home team %+v", home)
	}
	if home.Record == nil || home.Record.Wins != 24 || home.Record.Losses != 12 {
		t.Fatalf("unexpected record %+v", home.Record)
	}
	if home.LogoURL != "https://a.espncdn.com/bos.png" {
		t.Fatalf("unexpected logo %q", home.LogoURL)
	}

	// Away team carries no logo; the deterministic CDN fallback applies.
	if g.AwayTeam.LogoURL != fallbackLogoTemplate+"13.png" {
		t.Fatalf("unexpected away logo %q", g.AwayTeam.LogoURL)
	}
}

func TestMapTeamsDropsEntriesWithoutID(t *testing.T) {
	payload := teamsResponse{Sports: []sportEntry{{Leagues: []leagueEntry{{Teams: []teamEntry{
		{Team: teamDetail{ID: "2", Name: "Celtics", Location: "Boston", Abbreviation: "BOS"}},
		{Team: teamDetail{Name: "Ghost"}},
	}}}}}}

	list, dropped := mapTeams(payload)
	if len(list) != 1 || dropped != 1 {
		t.Fatalf("expected 1 team and 1 dropped, got %d and %d", len(list), dropped)
	}
}

func TestMapTeamDetailRecordAndStanding(t *testing.T) {
	detail := teamDetail{
		ID:           "2",
		Name:         "Celtics",
		Location:     "Boston",
		Abbreviation: "BOS",
		Record: recordBlock{Items: []recordItem{{
			Type:    "total",
			Summary: "24-12",
			Stats: []statEntry{
				{Name: "playoffSeed", Value: 1},
				{Name: "divisionRank", Value: 1},
			},
		}}},
	}

	team := mapTeamDetail(detail)
	if team.Record == nil || team.Record.Wins != 24 {
		t.Fatalf("unexpected record %+v", team.Record)
	}
	if team.Standing == nil || team.Standing.ConferenceRank != 1 {
		t.Fatalf("unexpected standing %+v", team.Standing)
	}
}

func TestParseRecordSummary(t *testing.T) {
	tests := []struct {
		summary string
		wantNil bool
		wins    int
		losses  int
	}{
		{"24-12", false, 24, 12},
		{" 3-0 ", false, 3, 0},
		{"24", true, 0, 0},
		{"a-b", true, 0, 0},
		{"", true, 0, 0},
	}

	for _, tt := range tests {
		got := parseRecordSummary(tt.summary)
		if tt.wantNil {
			if got != nil {
				t.Fatalf("parseRecordSummary(%q) = %+v, want nil", tt.summary, got)
			}
			continue
		}
		if got == nil || got.Wins != tt.wins || got.Losses != tt.losses {
			t.Fatalf("parseRecordSummary(%q) = %+v", tt.summary, got)
		}
	}
}

func TestMapRoster(t *testing.T) {
	team := mapTeamDetail(teamDetail{ID: "2", Name: "Celtics"})
	payload := rosterResponse{Athletes: []athlete{
		{ID: "4066354", DisplayName: "Sample Guard", Jersey: "7", Position: positionRef{Abbreviation: "G"}},
		{DisplayName: "No ID"},
	}}

	roster, dropped := mapRoster(payload, team)
	if len(roster) != 1 || dropped != 1 {
		t.Fatalf("expected 1 player and 1 dropped, got %d and %d", len(roster), dropped)
	}
	p := roster[0]
	if p.ID != "4066354" || p.Position != "G" || p.Team.ID != "2" {
		t.Fatalf("unexpected player %+v", p)
	}
}

func TestMapSummary(t *testing.T) {
	e := sampleEvent("401585601", "post")
	payload := summaryResponse{Header: summaryHeader{ID: "401585601", Competitions: []competition{{
		Date:        e.Date,
		Status:      e.Status,
		Competitors: e.Competitions[0].Competitors,
	}}}}

	g, err := mapSummary(payload)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.ID != "401585601" || g.Status != domaingames.StatusFinal {
		t.Fatalf("unexpected game %+v", g)
	}
}

func TestMapSummaryMissingID(t *testing.T) {
	if _, err := mapSummary(summaryResponse{}); err == nil {
		t.Fatal("expected error for missing event id")
	}
}

func TestMapArticles(t *testing.T) {
	payload := newsResponse{Articles: []article{
		{
			DataSourceIdentifier: "abc123",
			Headline:             "Trade deadline recap",
			Published:            "2024-11-01T12:00:00Z",
			Images:               []image{{URL: "https://a.espncdn.com/photo.jpg"}},
			Categories:           []category{{Description: "NBA"}},
			Links:                links{Web: webLink{Href: "https://www.espn.com/story"}},
		},
		{Headline: "identity from link", Links: links{Web: webLink{Href: "https://www.espn.com/other"}}},
		{Headline: "no identity at all"},
	}}

	articles, dropped := mapArticles(payload)
	if len(articles) != 2 || dropped != 1 {
		t.Fatalf("expected 2 articles and 1 dropped, got %d and %d", len(articles), dropped)
	}
	if articles[0].ID != "abc123" || articles[0].ImageURL != "https://a.espncdn.com/photo.jpg" || articles[0].Category != "NBA" {
		t.Fatalf("unexpected article %+v", articles[0])
	}
	if articles[1].ID != "https://www.espn.com/other" {
		t.Fatalf("expected link as fallback id, got %q", articles[1].ID)
	}
}
