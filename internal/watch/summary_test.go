package watch

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"scorewatch/internal/domain/games"
	"scorewatch/internal/providers"
	"scorewatch/internal/teststubs"
)

func TestSummaryLoaderLoad(t *testing.T) {
	stub := &teststubs.StubSummaryProvider{Payload: json.RawMessage(`{"boxscore": {}}`)}
	loader := NewSummaryLoader(stub)

	payload, err := loader.Load(context.Background(), games.SportNFL, "401")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(payload) != `{"boxscore": {}}` {
		t.Fatalf("unexpected payload %s", payload)
	}
	if got := stub.Calls.Load(); got != 1 {
		t.Fatalf("expected 1 call, got %d", got)
	}
}

func TestSummaryLoaderSurfacesProviderError(t *testing.T) {
	provErr := errors.New("status 404")
	loader := NewSummaryLoader(&teststubs.StubSummaryProvider{Err: provErr})

	if _, err := loader.Load(context.Background(), games.SportNBA, "1"); !errors.Is(err, provErr) {
		t.Fatalf("expected provider error, got %v", err)
	}
}

func TestSummaryLoaderWithoutProvider(t *testing.T) {
	loader := NewSummaryLoader(nil)
	if _, err := loader.Load(context.Background(), games.SportNBA, "1"); !errors.Is(err, providers.ErrProviderUnavailable) {
		t.Fatalf("expected ErrProviderUnavailable, got %v", err)
	}
}

func TestSummaryLoaderSupersededLoadIsDiscarded(t *testing.T) {
	stub := &teststubs.StubSummaryProvider{
		Payload: json.RawMessage(`{"winner": true}`),
		Delay:   100 * time.Millisecond,
	}
	loader := NewSummaryLoader(stub)

	var wg sync.WaitGroup
	wg.Add(1)
	var firstErr error
	go func() {
		defer wg.Done()
		_, firstErr = loader.Load(context.Background(), games.SportNFL, "old")
	}()

	// Give the first load time to register its cancel slot.
	time.Sleep(20 * time.Millisecond)

	payload, err := loader.Load(context.Background(), games.SportNFL, "new")
	if err != nil {
		t.Fatalf("superseding load failed: %v", err)
	}
	if string(payload) != `{"winner": true}` {
		t.Fatalf("unexpected payload %s", payload)
	}

	wg.Wait()
	if !errors.Is(firstErr, context.Canceled) {
		t.Fatalf("expected superseded load to report cancellation, got %v", firstErr)
	}
}

func TestSummaryLoaderClose(t *testing.T) {
	stub := &teststubs.StubSummaryProvider{
		Payload: json.RawMessage(`{}`),
		Delay:   time.Second,
	}
	loader := NewSummaryLoader(stub)

	done := make(chan error, 1)
	go func() {
		_, err := loader.Load(context.Background(), games.SportMLB, "1")
		done <- err
	}()

	time.Sleep(20 * time.Millisecond)
	loader.Close()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("expected cancellation after close, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("load did not return after close")
	}
}
