package scoreboard

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"scorewatch/internal/domain/games"
	"scorewatch/internal/logging"
	"scorewatch/internal/metrics"
	"scorewatch/internal/providers"
)

// Fetcher aggregates per-sport scoreboard fetches into one game list.
type Fetcher struct {
	provider providers.ScoreboardProvider
	sports   []games.Sport
	logger   *slog.Logger
	metrics  *metrics.Recorder
	now      func() time.Time
}

// New constructs a Fetcher. A nil or empty sports list means all
// supported sports.
func New(provider providers.ScoreboardProvider, sports []games.Sport, logger *slog.Logger, recorder *metrics.Recorder) *Fetcher {
	if len(sports) == 0 {
		sports = games.AllSports()
	}
	return &Fetcher{
		provider: provider,
		sports:   sports,
		logger:   logger,
		metrics:  recorder,
		now:      time.Now,
	}
}

// Sports returns the sports this fetcher covers.
func (f *Fetcher) Sports() []games.Sport {
	out := make([]games.Sport, len(f.sports))
	copy(out, f.sports)
	return out
}

// FetchSport fetches and normalizes one sport's scoreboard.
func (f *Fetcher) FetchSport(ctx context.Context, sport games.Sport, date time.Time) ([]games.Game, error) {
	if f.provider == nil {
		return nil, providers.ErrProviderUnavailable
	}

	start := f.now()
	list, err := f.provider.FetchScoreboard(ctx, sport, date)
	f.metrics.RecordFetchAttempt(string(sport), f.now().Sub(start), err)
	return list, err
}

// FetchAll fetches every configured sport concurrently and concatenates
// the results. A failing sport contributes zero games and never aborts
// its siblings; the only hard failures are a missing provider and
// cancellation, in which case partial results are discarded.
func (f *Fetcher) FetchAll(ctx context.Context, date time.Time) ([]games.Game, error) {
	if f.provider == nil {
		return nil, providers.ErrProviderUnavailable
	}

	// Each goroutine writes only its own slot, so there is no shared
	// accumulator to race on.
	results := make([][]games.Game, len(f.sports))

	var wg sync.WaitGroup
	for i, sport := range f.sports {
		wg.Add(1)
		go func(i int, sport games.Sport) {
			defer wg.Done()
			list, err := f.FetchSport(ctx, sport, date)
			if err != nil {
				if !isCancellation(err) {
					logging.Warn(f.logger, "scoreboard fetch failed",
						slog.String(logging.FieldSport, string(sport)),
						"error", err,
					)
				}
				return
			}
			results[i] = list
		}(i, sport)
	}
	wg.Wait()

	// A superseded fetch must not contribute stale results.
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	total := 0
	for _, list := range results {
		total += len(list)
	}
	all := make([]games.Game, 0, total)
	for _, list := range results {
		all = append(all, list...)
	}
	return all, nil
}

func isCancellation(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
