package teststubs

import (
	"context"
	"encoding/json"
	"sync/atomic"
	"time"

	"scorewatch/internal/domain/games"
)

// StubProvider is a test double for providers.ScoreboardProvider with
// per-sport results and failures.
type StubProvider struct {
	Games  map[games.Sport][]games.Game
	Errs   map[games.Sport]error
	Delay  time.Duration
	Calls  atomic.Int32
	Notify chan struct{}
}

// FetchScoreboard returns the configured games or error for the sport.
func (s *StubProvider) FetchScoreboard(ctx context.Context, sport games.Sport, date time.Time) ([]games.Game, error) {
	_ = date
	s.Calls.Add(1)
	if s.Notify != nil {
		select {
		case <-s.Notify:
		default:
			close(s.Notify)
		}
	}
	if s.Delay > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(s.Delay):
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.Errs != nil {
		if err := s.Errs[sport]; err != nil {
			return nil, err
		}
	}
	if s.Games == nil {
		return nil, nil
	}
	return s.Games[sport], nil
}

// StubSummaryProvider is a test double for providers.SummaryProvider.
type StubSummaryProvider struct {
	Payload json.RawMessage
	Err     error
	Delay   time.Duration
	Calls   atomic.Int32
}

// FetchSummary returns the configured payload or error.
func (s *StubSummaryProvider) FetchSummary(ctx context.Context, sport games.Sport, eventID string) (json.RawMessage, error) {
	_ = sport
	_ = eventID
	s.Calls.Add(1)
	if s.Delay > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(s.Delay):
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.Payload, s.Err
}

// StubFetcher is a test double for watch.Fetcher. Each call pops the
// next scripted result; the last result repeats once the script is
// exhausted.
type StubFetcher struct {
	Script []FetchResult
	Calls  atomic.Int32
	Notify chan struct{}
}

// FetchResult is one scripted FetchAll outcome.
type FetchResult struct {
	Games []games.Game
	Err   error
	Delay time.Duration
}

// FetchAll returns the next scripted result while tracking calls.
func (s *StubFetcher) FetchAll(ctx context.Context, date time.Time) ([]games.Game, error) {
	_ = date
	call := int(s.Calls.Add(1)) - 1
	if s.Notify != nil {
		select {
		case s.Notify <- struct{}{}:
		default:
		}
	}

	var result FetchResult
	if len(s.Script) > 0 {
		if call >= len(s.Script) {
			call = len(s.Script) - 1
		}
		result = s.Script[call]
	}

	if result.Delay > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(result.Delay):
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return result.Games, result.Err
}
