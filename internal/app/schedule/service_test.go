package schedule

import (
	"context"
	"errors"
	"testing"
	"time"

	domaingames "nba-companion-service/internal/domain/games"
	"nba-companion-service/internal/metrics"
	"nba-companion-service/internal/testutil"
)

func newTestService(provider *testutil.StubDatedGames, nowToken string) *Service {
	logger, _ := testutil.NewBufferLogger()
	svc := NewService(provider, logger, metrics.NewRecorder())
	svc.now = testutil.NowAt(testutil.MustParseRFC3339(nowToken))
	return svc
}

func TestWindowIssuesOneRequestPerDate(t *testing.T) {
	provider := &testutil.StubDatedGames{}
	svc := newTestService(provider, "2024-11-01T12:00:00Z")

	if _, err := svc.Window(context.Background(), 2, 5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"20241030", "20241031", "20241101", "20241102", "20241103", "20241104", "20241105"}
	if len(provider.Requested) != len(want) {
		t.Fatalf("expected %d requests, got %d", len(want), len(provider.Requested))
	}
	for i, token := range want {
		if provider.Requested[i] != token {
			t.Fatalf("request %d = %q, want %q", i, provider.Requested[i], token)
		}
	}
}

func TestWindowToleratesPartialFailures(t *testing.T) {
	provider := &testutil.StubDatedGames{
		ByDate: map[string][]domaingames.Game{
			"20241101": {testutil.GameOn("g1", "2024-11-01", "2024-11-01T19:00:00Z")},
		},
		Failures: map[string]error{
			"20241031": errors.New("boom"),
		},
	}
	svc := newTestService(provider, "2024-11-01T12:00:00Z")

	days, err := svc.Window(context.Background(), 2, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(provider.Requested) != 7 {
		t.Fatalf("a failing date must not abort the window; got %d requests", len(provider.Requested))
	}
	if len(days) != 1 || days[0].Date != "2024-11-01" {
		t.Fatalf("unexpected days %+v", days)
	}
}

func TestWindowErrorsOnlyWhenAllDatesFail(t *testing.T) {
	failures := make(map[string]error)
	for _, token := range []string{"20241030", "20241031", "20241101", "20241102", "20241103", "20241104", "20241105"} {
		failures[token] = errors.New("down")
	}
	provider := &testutil.StubDatedGames{Failures: failures}
	svc := newTestService(provider, "2024-11-01T12:00:00Z")

	if _, err := svc.Window(context.Background(), 2, 5); !errors.Is(err, ErrWindowUnavailable) {
		t.Fatalf("expected ErrWindowUnavailable, got %v", err)
	}
}

func TestWindowDeduplicatesAcrossDates(t *testing.T) {
	boundary := testutil.GameOn("0022400123", "2024-11-01", "2024-11-01T23:30:00Z")
	provider := &testutil.StubDatedGames{
		ByDate: map[string][]domaingames.Game{
			"20241101": {boundary},
			"20241102": {boundary},
		},
	}
	svc := newTestService(provider, "2024-11-01T12:00:00Z")

	days, err := svc.Window(context.Background(), 2, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	total := 0
	for _, d := range days {
		total += len(d.Games)
	}
	if total != 1 {
		t.Fatalf("expected boundary game once, got %d occurrences", total)
	}
}

func TestWindowGroupsByGameDateAndOrders(t *testing.T) {
	provider := &testutil.StubDatedGames{
		ByDate: map[string][]domaingames.Game{
			"20241102": {testutil.GameOn("g3", "2024-11-02", "2024-11-02T19:30:00Z")},
			"20241101": {
				testutil.GameOn("g2", "2024-11-01", "2024-11-01T22:00:00Z"),
				testutil.GameOn("g1", "2024-11-01", "2024-11-01T19:00:00Z"),
			},
		},
	}
	svc := newTestService(provider, "2024-11-01T12:00:00Z")

	days, err := svc.Window(context.Background(), 2, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(days) != 2 {
		t.Fatalf("expected 2 days, got %d", len(days))
	}
	if days[0].Date != "2024-11-01" || days[1].Date != "2024-11-02" {
		t.Fatalf("expected ascending dates, got %s then %s", days[0].Date, days[1].Date)
	}
	if days[0].Games[0].ID != "g1" || days[0].Games[1].ID != "g2" {
		t.Fatalf("expected start-time order within day, got %s then %s", days[0].Games[0].ID, days[0].Games[1].ID)
	}
}

func TestWindowGroupsByGameOwnDateNotRequestDate(t *testing.T) {
	// A game returned under the 11-01 request that actually tips off on
	// 11-02 UTC must land under 11-02.
	provider := &testutil.StubDatedGames{
		ByDate: map[string][]domaingames.Game{
			"20241101": {testutil.GameOn("late", "2024-11-02", "2024-11-02T00:30:00Z")},
		},
	}
	svc := newTestService(provider, "2024-11-01T12:00:00Z")

	days, err := svc.Window(context.Background(), 2, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(days) != 1 || days[0].Date != "2024-11-02" {
		t.Fatalf("expected game grouped under its own date, got %+v", days)
	}
}

func TestZeroWindow(t *testing.T) {
	provider := &testutil.StubDatedGames{}
	svc := newTestService(provider, "2024-11-01T12:00:00Z")

	days, err := svc.Window(context.Background(), 0, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(provider.Requested) != 0 {
		t.Fatalf("expected no requests, got %d", len(provider.Requested))
	}
	if len(days) != 0 {
		t.Fatalf("expected no days, got %d", len(days))
	}
}

func TestTeamWindowSplitsAroundNow(t *testing.T) {
	team := testutil.SampleTeam("2", "BOS")
	mkGame := func(id, date, start string) domaingames.Game {
		g := testutil.GameOn(id, date, start)
		g.HomeTeam = team
		return g
	}

	provider := &testutil.StubDatedGames{
		ByDate: map[string][]domaingames.Game{
			"20241030": {mkGame("past2", "2024-10-30", "2024-10-30T19:00:00Z")},
			"20241031": {mkGame("past1", "2024-10-31", "2024-10-31T19:00:00Z")},
			"20241102": {mkGame("next1", "2024-11-02", "2024-11-02T19:00:00Z")},
			"20241103": {
				mkGame("next2", "2024-11-03", "2024-11-03T19:00:00Z"),
				testutil.GameOn("other", "2024-11-03", "2024-11-03T19:00:00Z"),
			},
		},
	}
	svc := newTestService(provider, "2024-11-01T12:00:00Z")

	sched, err := svc.TeamWindow(context.Background(), "2", 2, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sched.TeamID != "2" {
		t.Fatalf("unexpected team id %q", sched.TeamID)
	}

	if len(sched.Upcoming) != 2 || sched.Upcoming[0].ID != "next1" || sched.Upcoming[1].ID != "next2" {
		t.Fatalf("expected upcoming ascending, got %+v", sched.Upcoming)
	}
	if len(sched.Past) != 2 || sched.Past[0].ID != "past1" || sched.Past[1].ID != "past2" {
		t.Fatalf("expected past most-recent-first, got %+v", sched.Past)
	}
}

func TestWindowUsesConfiguredTimezone(t *testing.T) {
	provider := &testutil.StubDatedGames{}
	// 2024-11-02 01:00 UTC is still 2024-11-01 in New York.
	svc := newTestService(provider, "2024-11-02T01:00:00Z")
	svc.SetLocation(time.FixedZone("EDT", -4*60*60))

	if _, err := svc.Window(context.Background(), 0, 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(provider.Requested) != 1 || provider.Requested[0] != "20241101" {
		t.Fatalf("expected request for the eastern calendar day, got %v", provider.Requested)
	}
}

func TestDateTokens(t *testing.T) {
	now := testutil.MustParseRFC3339("2024-03-01T12:00:00Z")
	tokens := dateTokens(now, 1, 2)

	want := []string{"20240229", "20240301", "20240302"}
	if len(tokens) != len(want) {
		t.Fatalf("expected %d tokens, got %d", len(want), len(tokens))
	}
	for i := range want {
		if tokens[i] != want[i] {
			t.Fatalf("token %d = %q, want %q", i, tokens[i], want[i])
		}
	}
}
