package providers

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"scorewatch/internal/domain/games"
)

const (
	defaultRetryAttempts = 3
	defaultBackoff       = 200 * time.Millisecond
)

type backoffFunc func(attempt int) time.Duration

// retryingProvider wraps a ScoreboardProvider with retry/backoff behavior.
type retryingProvider struct {
	inner       ScoreboardProvider
	logger      *slog.Logger
	maxAttempts int
	backoffFn   backoffFunc
}

// NewRetryingProvider wraps the given provider with retries. If
// maxAttempts/backoff are <= 0, defaults are used. Context cancellation
// is never retried; a superseded fetch must stay dead.
func NewRetryingProvider(inner ScoreboardProvider, logger *slog.Logger, maxAttempts int, backoff time.Duration) ScoreboardProvider {
	if maxAttempts <= 0 {
		maxAttempts = defaultRetryAttempts
	}
	if backoff <= 0 {
		backoff = defaultBackoff
	}
	return &retryingProvider{
		inner:       inner,
		logger:      logger,
		maxAttempts: maxAttempts,
		backoffFn: func(attempt int) time.Duration {
			return time.Duration(attempt) * backoff
		},
	}
}

func (r *retryingProvider) FetchScoreboard(ctx context.Context, sport games.Sport, date time.Time) ([]games.Game, error) {
	var lastErr error

	for attempt := 1; attempt <= r.maxAttempts; attempt++ {
		list, err := r.inner.FetchScoreboard(ctx, sport, date)
		if err == nil {
			return list, nil
		}
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}
		lastErr = err

		if attempt == r.maxAttempts {
			break
		}

		r.logWarn("scoreboard fetch retry", "sport", string(sport), "attempt", attempt, "max_attempts", r.maxAttempts, "err", err)

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(r.backoffFn(attempt)):
		}
	}

	r.logWarn("scoreboard fetch failed", "sport", string(sport), "attempts", r.maxAttempts, "err", lastErr)
	return nil, lastErr
}

func (r *retryingProvider) logWarn(msg string, args ...any) {
	if r.logger != nil {
		r.logger.Warn(msg, args...)
	}
}
