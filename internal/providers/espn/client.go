package espn

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"scorewatch/internal/domain/games"
	"scorewatch/internal/logging"
	"scorewatch/internal/providers"
	"scorewatch/internal/timeutil"
)

// Config controls how the client reaches the upstream scoreboard API.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
	UserAgent  string
	// Timezone names the zone for pre-game display times; empty means
	// the process-local zone.
	Timezone string
	// LogoOverrides replaces the resolved logo for specific teams,
	// keyed by display name. Copied at construction; immutable after.
	LogoOverrides map[string]string
	Logger        *slog.Logger
}

// Client fetches scoreboards and normalizes their events into canonical
// games. It implements providers.DataProvider.
type Client struct {
	baseURL       string
	httpClient    httpDoer
	userAgent     string
	loc           *time.Location
	logoOverrides map[string]string
	logger        *slog.Logger
}

// NewClient constructs a scoreboard client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:       normalizeBaseURL(cfg.BaseURL),
		httpClient:    resolveHTTPClient(cfg.HTTPClient),
		userAgent:     resolveUserAgent(cfg.UserAgent),
		loc:           resolveLocation(cfg.Timezone),
		logoOverrides: cloneOverrides(cfg.LogoOverrides),
		logger:        cfg.Logger,
	}
}

// FetchScoreboard retrieves one sport's scoreboard for the given date
// and returns the normalized games. Events that cannot produce a valid
// record are dropped silently.
func (c *Client) FetchScoreboard(ctx context.Context, sport games.Sport, date time.Time) ([]games.Game, error) {
	path, ok := sportPaths[sport]
	if !ok {
		return nil, fmt.Errorf("espn: %w: %s", providers.ErrUnknownSport, sport)
	}

	url := fmt.Sprintf("%s/%s/scoreboard", c.baseURL, path)
	if !date.IsZero() {
		url = fmt.Sprintf("%s?dates=%s", url, timeutil.FormatCompactDate(date))
	}

	req, err := c.buildRequest(ctx, url)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, &providers.UpstreamError{
			Sport:      string(sport),
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	var payload scoreboardResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("espn: decoding %s scoreboard: %w", sport, err)
	}

	list := make([]games.Game, 0, len(payload.Events))
	dropped := 0
	for i := range payload.Events {
		game := transformEvent(&payload.Events[i], sport, c.loc, c.logoOverrides)
		if game == nil {
			dropped++
			continue
		}
		list = append(list, *game)
	}

	if dropped > 0 {
		logging.Warn(c.logger, "dropped incomplete scoreboard events",
			slog.String(logging.FieldSport, string(sport)),
			slog.Int(logging.FieldCount, dropped),
		)
	}

	return list, nil
}

// FetchSummary retrieves the detail document for one event. The body
// is returned opaque; only the presentation layer interprets it.
func (c *Client) FetchSummary(ctx context.Context, sport games.Sport, eventID string) (json.RawMessage, error) {
	path, ok := sportPaths[sport]
	if !ok {
		return nil, fmt.Errorf("espn: %w: %s", providers.ErrUnknownSport, sport)
	}
	if eventID == "" {
		return nil, fmt.Errorf("espn: missing event id")
	}

	req, err := c.buildRequest(ctx, fmt.Sprintf("%s/%s/summary?event=%s", c.baseURL, path, eventID))
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, &providers.UpstreamError{
			Sport:      string(sport),
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("espn: reading %s summary: %w", sport, err)
	}
	if !json.Valid(body) {
		return nil, fmt.Errorf("espn: %s summary is not valid JSON", sport)
	}
	return json.RawMessage(body), nil
}

func (c *Client) buildRequest(ctx context.Context, url string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")
	return req, nil
}
