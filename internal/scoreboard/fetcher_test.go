package scoreboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"scorewatch/internal/domain/games"
	"scorewatch/internal/metrics"
	"scorewatch/internal/teststubs"
)

func TestFetchAllConcatenatesAllSports(t *testing.T) {
	stub := &teststubs.StubProvider{
		Games: map[games.Sport][]games.Game{
			games.SportNFL: {{ID: "nfl-1", Sport: games.SportNFL}},
			games.SportNBA: {{ID: "nba-1", Sport: games.SportNBA}, {ID: "nba-2", Sport: games.SportNBA}},
		},
	}
	fetcher := New(stub, []games.Sport{games.SportNFL, games.SportNBA}, nil, nil)

	all, err := fetcher.FetchAll(context.Background(), time.Time{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 games, got %d", len(all))
	}
	if all[0].Sport != games.SportNFL {
		t.Fatalf("expected configured sport order preserved, got %q first", all[0].Sport)
	}
	if got := stub.Calls.Load(); got != 2 {
		t.Fatalf("expected 2 provider calls, got %d", got)
	}
}

func TestFetchAllToleratesFailingSport(t *testing.T) {
	stub := &teststubs.StubProvider{
		Games: map[games.Sport][]games.Game{
			games.SportNBA: {{ID: "nba-1", Sport: games.SportNBA}},
			games.SportNHL: {{ID: "nhl-1", Sport: games.SportNHL}},
		},
		Errs: map[games.Sport]error{
			games.SportNFL: errors.New("status 502"),
		},
	}
	fetcher := New(stub, []games.Sport{games.SportNFL, games.SportNBA, games.SportNHL}, nil, nil)

	all, err := fetcher.FetchAll(context.Background(), time.Time{})
	if err != nil {
		t.Fatalf("expected partial results without error, got %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 games from healthy sports, got %d", len(all))
	}
	for _, g := range all {
		if g.Sport == games.SportNFL {
			t.Fatalf("failed sport must contribute nothing, got %+v", g)
		}
	}
}

func TestFetchAllEmptyWhenEverySportFails(t *testing.T) {
	stub := &teststubs.StubProvider{
		Errs: map[games.Sport]error{
			games.SportNFL: errors.New("boom"),
			games.SportNBA: errors.New("boom"),
		},
	}
	fetcher := New(stub, []games.Sport{games.SportNFL, games.SportNBA}, nil, nil)

	all, err := fetcher.FetchAll(context.Background(), time.Time{})
	if err != nil {
		t.Fatalf("expected no hard failure, got %v", err)
	}
	if len(all) != 0 {
		t.Fatalf("expected empty list, got %d games", len(all))
	}
}

func TestFetchAllDiscardsPartialResultsOnCancellation(t *testing.T) {
	stub := &teststubs.StubProvider{
		Games: map[games.Sport][]games.Game{
			games.SportNBA: {{ID: "nba-1"}},
		},
	}
	fetcher := New(stub, []games.Sport{games.SportNBA}, nil, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := fetcher.FetchAll(ctx, time.Time{}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestFetchAllWithoutProvider(t *testing.T) {
	fetcher := New(nil, nil, nil, nil)
	if _, err := fetcher.FetchAll(context.Background(), time.Time{}); err == nil {
		t.Fatal("expected error without provider")
	}
	if _, err := fetcher.FetchSport(context.Background(), games.SportNBA, time.Time{}); err == nil {
		t.Fatal("expected error without provider")
	}
}

func TestNewDefaultsToAllSports(t *testing.T) {
	fetcher := New(&teststubs.StubProvider{}, nil, nil, nil)
	if got, want := len(fetcher.Sports()), len(games.AllSports()); got != want {
		t.Fatalf("expected %d sports, got %d", want, got)
	}
}

func TestFetchSportRecordsMetrics(t *testing.T) {
	recorder := metrics.NewRecorder()
	stub := &teststubs.StubProvider{
		Games: map[games.Sport][]games.Game{games.SportNBA: {{ID: "1"}}},
		Errs:  map[games.Sport]error{games.SportNFL: errors.New("boom")},
	}
	fetcher := New(stub, []games.Sport{games.SportNBA, games.SportNFL}, nil, recorder)

	if _, err := fetcher.FetchSport(context.Background(), games.SportNBA, time.Time{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := fetcher.FetchSport(context.Background(), games.SportNFL, time.Time{}); err == nil {
		t.Fatal("expected error")
	}

	if got := recorder.FetchCalls("nba"); got != 1 {
		t.Fatalf("expected 1 nba call recorded, got %d", got)
	}
	if got := recorder.FetchErrors("nba"); got != 0 {
		t.Fatalf("expected 0 nba errors, got %d", got)
	}
	if got := recorder.FetchErrors("nfl"); got != 1 {
		t.Fatalf("expected 1 nfl error, got %d", got)
	}
}
