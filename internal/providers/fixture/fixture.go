package fixture

import (
	"context"
	"encoding/json"
	"time"

	"scorewatch/internal/domain/games"
)

// Provider returns a static set of games useful for local rendering and
// bootstrapping without hitting the network.
type Provider struct {
	now func() time.Time
}

// New creates a fixture provider with a time source.
func New() *Provider {
	return &Provider{now: time.Now}
}

// FetchScoreboard returns a deterministic set of example games for the
// sports that have fixtures; other sports yield an empty scoreboard.
func (p *Provider) FetchScoreboard(ctx context.Context, sport games.Sport, date time.Time) ([]games.Game, error) {
	_ = ctx

	start := p.now().UTC().Truncate(time.Hour)
	if !date.IsZero() {
		start = time.Date(date.Year(), date.Month(), date.Day(), 18, 0, 0, 0, time.UTC)
	}

	switch sport {
	case games.SportNBA:
		return []games.Game{
			{
				ID:               "fixture-nba-1",
				Sport:            games.SportNBA,
				SportName:        "Celtics at Lakers",
				AwayTeam:         "Boston Celtics",
				HomeTeam:         "Los Angeles Lakers",
				AwayScore:        "54",
				HomeScore:        "49",
				AwayTeamRecord:   "38-17",
				HomeTeamRecord:   "30-25",
				Status:           games.StatusLive,
				Time:             "8:21 - 3rd",
				FullDateTime:     start.Format(time.RFC3339),
				AwayTeamID:       "2",
				HomeTeamID:       "13",
				AwayAbbreviation: "BOS",
				HomeAbbreviation: "LAL",
				BroadcastChannel: "TNT",
			},
			{
				ID:             "fixture-nba-2",
				Sport:          games.SportNBA,
				SportName:      "Warriors at Heat",
				AwayTeam:       "Golden State Warriors",
				HomeTeam:       "Miami Heat",
				AwayScore:      "",
				HomeScore:      "",
				Status:         games.StatusScheduled,
				DisplayTime:    start.Add(2 * time.Hour).Format("3:04 PM"),
				FullDateTime:   start.Add(2 * time.Hour).Format(time.RFC3339),
				AwayTeamID:     "9",
				HomeTeamID:     "14",
				AwayTeamRecord: "28-27",
				HomeTeamRecord: "31-24",
			},
		}, nil
	case games.SportMLB:
		inning := 6
		balls, strikes, outs := 2, 1, 2
		return []games.Game{
			{
				ID:           "fixture-mlb-1",
				Sport:        games.SportMLB,
				SportName:    "Cubs at Mets",
				AwayTeam:     "Chicago Cubs",
				HomeTeam:     "New York Mets",
				AwayScore:    "3",
				HomeScore:    "2",
				Status:       games.StatusLive,
				Time:         "Top 6th",
				FullDateTime: start.Format(time.RFC3339),
				AtBatTeam:    games.SideAway,
				InningNumber: &inning,
				TopBottom:    "top",
				Bases:        "1st & 3rd",
				Balls:        &balls,
				Strikes:      &strikes,
				Outs:         &outs,
			},
		}, nil
	default:
		return []games.Game{}, nil
	}
}

// FetchSummary returns a minimal static summary document.
func (p *Provider) FetchSummary(ctx context.Context, sport games.Sport, eventID string) (json.RawMessage, error) {
	_ = ctx
	payload := map[string]any{
		"id":    eventID,
		"sport": string(sport),
		"headlines": []map[string]string{
			{"description": "Fixture summary for " + eventID},
		},
	}
	return json.Marshal(payload)
}
