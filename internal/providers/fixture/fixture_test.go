package fixture

import (
	"context"
	"testing"
)

func TestFixtureDataIsCoherent(t *testing.T) {
	p := New()
	ctx := context.Background()

	games, err := p.FetchScoreboard(ctx)
	if err != nil || len(games) == 0 {
		t.Fatalf("scoreboard: %v, %d games", err, len(games))
	}

	lines, err := p.FetchOdds(ctx)
	if err != nil {
		t.Fatalf("odds: %v", err)
	}
	if _, ok := lines[games[0].ID]; !ok {
		t.Fatalf("expected a line for game %q", games[0].ID)
	}

	teams, err := p.FetchTeams(ctx)
	if err != nil || len(teams) == 0 {
		t.Fatalf("teams: %v, %d teams", err, len(teams))
	}

	roster, err := p.FetchRoster(ctx, teams[0].ID)
	if err != nil || len(roster) == 0 {
		t.Fatalf("roster: %v, %d players", err, len(roster))
	}

	articles, err := p.FetchNews(ctx)
	if err != nil || len(articles) == 0 {
		t.Fatalf("news: %v, %d articles", err, len(articles))
	}
}

func TestFetchGamesByDateRewritesDate(t *testing.T) {
	p := New()

	games, err := p.FetchGamesByDate(context.Background(), "20241105")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(games) == 0 {
		t.Fatal("expected games")
	}
	if games[0].Date != "2024-11-05" {
		t.Fatalf("expected rewritten date, got %q", games[0].Date)
	}

	empty, err := p.FetchGamesByDate(context.Background(), "bad")
	if err != nil || empty != nil {
		t.Fatalf("expected empty result for malformed token, got %v, %v", empty, err)
	}
}
