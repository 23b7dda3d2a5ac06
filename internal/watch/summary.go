package watch

import (
	"context"
	"encoding/json"
	"sync"

	"scorewatch/internal/domain/games"
	"scorewatch/internal/providers"
)

// SummaryLoader serializes game-summary fetches for one detail view
// with the same single-slot cancellation discipline as the scoreboard
// watcher: starting a new load cancels the previous one, and a
// superseded result is discarded.
type SummaryLoader struct {
	provider providers.SummaryProvider

	mu         sync.Mutex
	cancel     context.CancelFunc
	generation uint64
}

// NewSummaryLoader constructs a loader over the given provider.
func NewSummaryLoader(provider providers.SummaryProvider) *SummaryLoader {
	return &SummaryLoader{provider: provider}
}

// Load fetches the summary document for one event. If a newer Load
// supersedes this one while it is in flight, the stale result is
// dropped and context.Canceled is returned.
func (l *SummaryLoader) Load(ctx context.Context, sport games.Sport, eventID string) (json.RawMessage, error) {
	if l.provider == nil {
		return nil, providers.ErrProviderUnavailable
	}

	l.mu.Lock()
	if l.cancel != nil {
		l.cancel()
	}
	fetchCtx, cancel := context.WithCancel(ctx)
	l.cancel = cancel
	l.generation++
	gen := l.generation
	l.mu.Unlock()
	defer cancel()

	payload, err := l.provider.FetchSummary(fetchCtx, sport, eventID)

	l.mu.Lock()
	superseded := gen != l.generation
	l.mu.Unlock()
	if superseded {
		return nil, context.Canceled
	}
	return payload, err
}

// Close cancels any in-flight load.
func (l *SummaryLoader) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.cancel != nil {
		l.cancel()
	}
}
