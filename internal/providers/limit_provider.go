package providers

import (
	"context"
	"log/slog"
	"time"

	domaingames "nba-companion-service/internal/domain/games"
)

// rateLimitedDatedGames wraps a DatedGamesProvider and enforces a minimum
// interval between calls to pace the date-window aggregation against
// upstream quotas.
type rateLimitedDatedGames struct {
	next     DatedGamesProvider
	interval time.Duration
	ticker   *time.Ticker
	logger   *slog.Logger
}

// NewRateLimitedDatedGames returns a DatedGamesProvider that limits calls to
// the given interval. Calls block until the interval elapses.
func NewRateLimitedDatedGames(next DatedGamesProvider, interval time.Duration, logger *slog.Logger) DatedGamesProvider {
	if interval <= 0 {
		interval = time.Second
	}
	return &rateLimitedDatedGames{
		next:     next,
		interval: interval,
		ticker:   time.NewTicker(interval),
		logger:   logger,
	}
}

func (p *rateLimitedDatedGames) FetchGamesByDate(ctx context.Context, date string) ([]domaingames.Game, error) {
	if p == nil || p.next == nil {
		if p != nil && p.logger != nil {
			p.logger.Warn("provider unavailable", slog.String("provider", "rate-limited"))
		}
		return nil, ErrProviderUnavailable
	}
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-p.ticker.C:
	}
	return p.next.FetchGamesByDate(ctx, date)
}

// Close stops the pacing ticker.
func (p *rateLimitedDatedGames) Close() {
	if p.ticker != nil {
		p.ticker.Stop()
	}
}
