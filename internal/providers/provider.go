package providers

import (
	"context"
	"encoding/json"
	"time"

	"scorewatch/internal/domain/games"
)

// ScoreboardProvider defines how one sport's scoreboard is fetched and
// normalized. The date carries the caller's location; providers
// serialize it in that location when talking upstream.
type ScoreboardProvider interface {
	FetchScoreboard(ctx context.Context, sport games.Sport, date time.Time) ([]games.Game, error)
}

// SummaryProvider fetches the detail document for a single event. The
// payload is opaque to this module; only the presentation layer reads it.
type SummaryProvider interface {
	FetchSummary(ctx context.Context, sport games.Sport, eventID string) (json.RawMessage, error)
}

// DataProvider combines all provider capabilities.
type DataProvider interface {
	ScoreboardProvider
	SummaryProvider
}
