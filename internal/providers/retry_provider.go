package providers

import (
	"context"
	"log/slog"
	"time"

	domaingames "nba-companion-service/internal/domain/games"
	"nba-companion-service/internal/logging"
)

const (
	defaultRetryAttempts = 3
	defaultBackoff       = 200 * time.Millisecond
)

type backoffFunc func(attempt int) time.Duration

// retryingScoreboard wraps a ScoreboardProvider with retry/backoff behavior.
// The underlying client still makes exactly one attempt per call; retrying
// is a caller policy layered on top for the background refresh path.
type retryingScoreboard struct {
	inner       ScoreboardProvider
	logger      *slog.Logger
	maxAttempts int
	backoffFn   backoffFunc
}

// NewRetryingScoreboard wraps the given provider with retries. If
// maxAttempts/backoff are <= 0, defaults are used.
func NewRetryingScoreboard(inner ScoreboardProvider, logger *slog.Logger, maxAttempts int, backoff time.Duration) ScoreboardProvider {
	if maxAttempts <= 0 {
		maxAttempts = defaultRetryAttempts
	}
	if backoff <= 0 {
		backoff = defaultBackoff
	}
	return &retryingScoreboard{
		inner:       inner,
		logger:      logger,
		maxAttempts: maxAttempts,
		backoffFn: func(attempt int) time.Duration {
			return time.Duration(attempt) * backoff
		},
	}
}

func (r *retryingScoreboard) FetchScoreboard(ctx context.Context) ([]domaingames.Game, error) {
	var lastErr error

	for attempt := 1; attempt <= r.maxAttempts; attempt++ {
		games, err := r.inner.FetchScoreboard(ctx)
		if err == nil {
			return games, nil
		}
		lastErr = err

		if attempt == r.maxAttempts {
			break
		}

		r.logWarn(ctx, "scoreboard fetch retry", "attempt", attempt, "max_attempts", r.maxAttempts, "err", err)

		// backoff with context awareness
		delay := r.backoffFn(attempt)
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delay):
		}
	}

	r.logWarn(ctx, "scoreboard fetch failed", "attempts", r.maxAttempts, "err", lastErr)
	return nil, lastErr
}

func (r *retryingScoreboard) logWarn(ctx context.Context, msg string, args ...any) {
	logger := logging.FromContext(ctx, r.logger)
	if logger != nil {
		logger.Warn(msg, args...)
	}
}
