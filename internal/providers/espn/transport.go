package espn

import (
	"net/http"
	"strings"
	"time"
)

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

func resolveHTTPClient(client *http.Client) httpDoer {
	if client != nil {
		return client
	}
	return &http.Client{Timeout: defaultHTTPTimeout}
}

func normalizeBaseURL(raw string) string {
	if raw == "" {
		raw = defaultBaseURL
	}
	return strings.TrimSuffix(raw, "/")
}

func resolveUserAgent(raw string) string {
	if raw == "" {
		return defaultUserAgent
	}
	return raw
}

// resolveLocation picks the zone used for display times. Defaults to
// the process-local zone so start times read like the viewer's clock.
func resolveLocation(name string) *time.Location {
	if name == "" {
		return time.Local
	}
	if loc, err := time.LoadLocation(name); err == nil {
		return loc
	}
	return time.Local
}

func cloneOverrides(overrides map[string]string) map[string]string {
	if len(overrides) == 0 {
		return nil
	}
	copied := make(map[string]string, len(overrides))
	for name, url := range overrides {
		copied[name] = url
	}
	return copied
}
