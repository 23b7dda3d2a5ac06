package providers

import (
	"context"
	"errors"
	"testing"
	"time"

	"scorewatch/internal/domain/games"
)

type countingProvider struct {
	calls   int
	results []fetchResult
}

type fetchResult struct {
	games []games.Game
	err   error
}

func (p *countingProvider) FetchScoreboard(ctx context.Context, sport games.Sport, date time.Time) ([]games.Game, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	idx := p.calls
	if idx >= len(p.results) {
		idx = len(p.results) - 1
	}
	p.calls++
	res := p.results[idx]
	return res.games, res.err
}

func noBackoff(p ScoreboardProvider) ScoreboardProvider {
	return NewRetryingProvider(p, nil, 3, time.Nanosecond)
}

func TestRetryingProviderSucceedsFirstTry(t *testing.T) {
	inner := &countingProvider{results: []fetchResult{
		{games: []games.Game{{ID: "1"}}},
	}}

	list, err := noBackoff(inner).FetchScoreboard(context.Background(), games.SportNBA, time.Time{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(list) != 1 || list[0].ID != "1" {
		t.Fatalf("unexpected games: %+v", list)
	}
	if inner.calls != 1 {
		t.Fatalf("expected 1 call, got %d", inner.calls)
	}
}

func TestRetryingProviderRetriesThenSucceeds(t *testing.T) {
	upstream := errors.New("status 502")
	inner := &countingProvider{results: []fetchResult{
		{err: upstream},
		{err: upstream},
		{games: []games.Game{{ID: "2"}}},
	}}

	list, err := noBackoff(inner).FetchScoreboard(context.Background(), games.SportNFL, time.Time{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(list) != 1 || list[0].ID != "2" {
		t.Fatalf("unexpected games: %+v", list)
	}
	if inner.calls != 3 {
		t.Fatalf("expected 3 calls, got %d", inner.calls)
	}
}

func TestRetryingProviderExhaustsAttempts(t *testing.T) {
	upstream := errors.New("status 503")
	inner := &countingProvider{results: []fetchResult{{err: upstream}}}

	_, err := noBackoff(inner).FetchScoreboard(context.Background(), games.SportMLB, time.Time{})
	if !errors.Is(err, upstream) {
		t.Fatalf("expected last error surfaced, got %v", err)
	}
	if inner.calls != 3 {
		t.Fatalf("expected 3 calls, got %d", inner.calls)
	}
}

func TestRetryingProviderNeverRetriesCancellation(t *testing.T) {
	inner := &countingProvider{results: []fetchResult{{err: context.Canceled}}}

	_, err := noBackoff(inner).FetchScoreboard(context.Background(), games.SportNHL, time.Time{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if inner.calls != 1 {
		t.Fatalf("expected 1 call, got %d", inner.calls)
	}

	inner = &countingProvider{results: []fetchResult{{err: context.DeadlineExceeded}}}
	_, err = noBackoff(inner).FetchScoreboard(context.Background(), games.SportNHL, time.Time{})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected context.DeadlineExceeded, got %v", err)
	}
	if inner.calls != 1 {
		t.Fatalf("expected 1 call, got %d", inner.calls)
	}
}

func TestRetryingProviderStopsWhenContextCancelled(t *testing.T) {
	upstream := errors.New("status 500")
	inner := &countingProvider{results: []fetchResult{{err: upstream}}}
	wrapped := NewRetryingProvider(inner, nil, 5, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := wrapped.FetchScoreboard(ctx, games.SportNBA, time.Time{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected cancellation to stop retries, got %v", err)
	}
	if inner.calls > 1 {
		t.Fatalf("expected no retry after cancellation, got %d calls", inner.calls)
	}
}

func TestRetryingProviderDefaults(t *testing.T) {
	upstream := errors.New("status 500")
	inner := &countingProvider{results: []fetchResult{{err: upstream}}}
	wrapped := NewRetryingProvider(inner, nil, 0, 0).(*retryingProvider)

	if wrapped.maxAttempts != defaultRetryAttempts {
		t.Fatalf("expected default attempts, got %d", wrapped.maxAttempts)
	}
	if got := wrapped.backoffFn(2); got != 2*defaultBackoff {
		t.Fatalf("expected linear backoff, got %v", got)
	}
}

func TestUpstreamErrorMessage(t *testing.T) {
	err := &UpstreamError{Sport: "nba", StatusCode: 502, Body: "bad gateway"}
	if got := err.Error(); got != "nba scoreboard: unexpected status 502: bad gateway" {
		t.Fatalf("unexpected message %q", got)
	}

	bare := &UpstreamError{Sport: "nhl", StatusCode: 404}
	if got := bare.Error(); got != "nhl scoreboard: unexpected status 404" {
		t.Fatalf("unexpected message %q", got)
	}

	wrapped := errors.Join(errors.New("outer"), err)
	if got, ok := AsUpstreamError(wrapped); !ok || got.StatusCode != 502 {
		t.Fatalf("expected unwrap to find upstream error, got %v %v", got, ok)
	}
	if _, ok := AsUpstreamError(errors.New("plain")); ok {
		t.Fatal("expected no upstream error in plain error")
	}
}
