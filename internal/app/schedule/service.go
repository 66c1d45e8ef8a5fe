package schedule

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"time"

	domaingames "nba-companion-service/internal/domain/games"
	domainschedule "nba-companion-service/internal/domain/schedule"
	"nba-companion-service/internal/logging"
	"nba-companion-service/internal/metrics"
	"nba-companion-service/internal/providers"
	"nba-companion-service/internal/timeutil"
)

// ErrWindowUnavailable is returned when every date request in a window failed.
var ErrWindowUnavailable = errors.New("schedule window unavailable")

// Service aggregates games across a trailing/leading date window by issuing
// one request per calendar day.
type Service struct {
	provider providers.DatedGamesProvider
	logger   *slog.Logger
	metrics  *metrics.Recorder
	now      func() time.Time
	loc      *time.Location
}

// NewService constructs a schedule Service.
func NewService(provider providers.DatedGamesProvider, logger *slog.Logger, recorder *metrics.Recorder) *Service {
	return &Service{
		provider: provider,
		logger:   logger,
		metrics:  recorder,
		now:      time.Now,
	}
}

// SetLocation pins the window's calendar to a timezone. Games tip off on US
// evenings, so "today" in UTC flips a day too early; nil keeps server time.
func (s *Service) SetLocation(loc *time.Location) {
	s.loc = loc
}

func (s *Service) windowNow() time.Time {
	now := s.now()
	if s.loc != nil {
		now = now.In(s.loc)
	}
	return now
}

// Window fetches daysBefore+daysAfter dates sequentially and groups the
// result into ordered days. A failing date contributes zero games and never
// aborts the remaining dates; the window only errors when every date failed.
func (s *Service) Window(ctx context.Context, daysBefore, daysAfter int) ([]domainschedule.Day, error) {
	games, requested, failures := s.collect(ctx, daysBefore, daysAfter)
	if requested > 0 && failures == requested {
		return nil, ErrWindowUnavailable
	}
	return groupByDay(games), nil
}

// TeamWindow fetches the same window, keeps games where the team appears on
// either side, and splits them around "now".
func (s *Service) TeamWindow(ctx context.Context, teamID string, daysBefore, daysAfter int) (domainschedule.TeamSchedule, error) {
	games, requested, failures := s.collect(ctx, daysBefore, daysAfter)
	if requested > 0 && failures == requested {
		return domainschedule.TeamSchedule{}, ErrWindowUnavailable
	}

	var teamGames []domaingames.Game
	for _, g := range games {
		if g.HasTeam(teamID) {
			teamGames = append(teamGames, g)
		}
	}

	upcoming, past := splitAroundNow(teamGames, s.windowNow())
	return domainschedule.TeamSchedule{
		TeamID:   teamID,
		Upcoming: upcoming,
		Past:     past,
	}, nil
}

// collect issues the per-date requests sequentially and returns deduplicated
// games plus the request and failure counts.
func (s *Service) collect(ctx context.Context, daysBefore, daysAfter int) ([]domaingames.Game, int, int) {
	start := time.Now()
	tokens := dateTokens(s.windowNow(), daysBefore, daysAfter)

	var all []domaingames.Game
	failures := 0
	for _, token := range tokens {
		games, err := s.provider.FetchGamesByDate(ctx, token)
		if err != nil {
			failures++
			logging.Warn(s.logger, "date request failed, treating as empty",
				logging.FieldDate, token, "error", err)
			continue
		}
		all = append(all, games...)
	}

	s.metrics.RecordAggregation(time.Since(start), len(tokens), failures)
	return dedupe(all), len(tokens), failures
}

// dateTokens returns the YYYYMMDD tokens for now-daysBefore through
// now+daysAfter-1 inclusive.
func dateTokens(now time.Time, daysBefore, daysAfter int) []string {
	total := daysBefore + daysAfter
	if total <= 0 {
		return nil
	}
	start := now.AddDate(0, 0, -daysBefore)
	tokens := make([]string, 0, total)
	for i := 0; i < total; i++ {
		tokens = append(tokens, timeutil.FormatCompact(start.AddDate(0, 0, i)))
	}
	return tokens
}

// dedupe keeps the first occurrence of each game ID. Overlapping date
// requests can both return the same game near day boundaries.
func dedupe(games []domaingames.Game) []domaingames.Game {
	seen := make(map[string]struct{}, len(games))
	out := games[:0:0]
	for _, g := range games {
		if _, ok := seen[g.ID]; ok {
			continue
		}
		seen[g.ID] = struct{}{}
		out = append(out, g)
	}
	return out
}

// groupByDay groups games by their own date field (not the request date,
// which can differ under timezone skew) and orders days and games ascending.
func groupByDay(games []domaingames.Game) []domainschedule.Day {
	byDate := make(map[string][]domaingames.Game)
	for _, g := range games {
		byDate[g.Date] = append(byDate[g.Date], g)
	}

	dates := make([]string, 0, len(byDate))
	for date := range byDate {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	days := make([]domainschedule.Day, 0, len(dates))
	for _, date := range dates {
		dayGames := byDate[date]
		sort.Slice(dayGames, func(i, j int) bool {
			if dayGames[i].StartTime != dayGames[j].StartTime {
				return dayGames[i].StartTime < dayGames[j].StartTime
			}
			return dayGames[i].ID < dayGames[j].ID
		})
		days = append(days, domainschedule.Day{Date: date, Games: dayGames})
	}
	return days
}

// splitAroundNow separates games into upcoming (strictly after now,
// ascending) and past (at or before now, most recent first). Games without
// a parseable start time count as past.
func splitAroundNow(games []domaingames.Game, now time.Time) (upcoming, past []domaingames.Game) {
	type timed struct {
		game domaingames.Game
		at   time.Time
	}
	var future, gone []timed

	for _, g := range games {
		at, ok := g.StartAt()
		if ok && at.After(now) {
			future = append(future, timed{game: g, at: at})
		} else {
			gone = append(gone, timed{game: g, at: at})
		}
	}

	sort.Slice(future, func(i, j int) bool { return future[i].at.Before(future[j].at) })
	sort.Slice(gone, func(i, j int) bool { return gone[i].at.After(gone[j].at) })

	for _, t := range future {
		upcoming = append(upcoming, t.game)
	}
	for _, t := range gone {
		past = append(past, t.game)
	}
	return upcoming, past
}
