package config

import (
	"os"
	"strings"

	"scorewatch/internal/domain/games"
)

// Config holds runtime configuration for the scoreboard client.
type Config struct {
	Sports        []games.Sport
	Provider      string
	BaseURL       string
	Timezone      string
	Date          string
	LiveInterval  Duration
	IdleInterval  Duration
	RetryAttempts int
	RetryBackoff  Duration
	Metrics       MetricsConfig
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Sports:        loadSports(),
		Provider:      envOrDefault(envProvider, defaultProvider),
		BaseURL:       os.Getenv(envBaseURL),
		Timezone:      os.Getenv(envTimezone),
		Date:          os.Getenv(envDate),
		LiveInterval:  durationEnvOrDefault(envLiveInterval, defaultLiveInterval),
		IdleInterval:  durationEnvOrDefault(envIdleInterval, defaultIdleInterval),
		RetryAttempts: intEnvOrDefault(envRetryAttempts, 0),
		RetryBackoff:  durationEnvOrDefault(envRetryBackoff, 0),
		Metrics:       loadMetrics(),
	}
}

// loadSports parses the comma-separated sports list, keeping only
// recognized keys. Empty or fully invalid input means all sports.
func loadSports() []games.Sport {
	raw := os.Getenv(envSports)
	if raw == "" {
		return games.AllSports()
	}

	var sports []games.Sport
	for _, part := range strings.Split(raw, ",") {
		if sport, ok := games.ParseSport(strings.TrimSpace(strings.ToLower(part))); ok {
			sports = append(sports, sport)
		}
	}
	if len(sports) == 0 {
		return games.AllSports()
	}
	return sports
}
