package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Duration wraps time.Duration for clearer type usage in Config.
type Duration = time.Duration

// Lookups below never fail: a missing, empty, or unparseable value
// falls back to the given default so a typo'd environment still boots
// with a working cadence.

func envOrDefault(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

// durationEnvOrDefault rejects non-positive durations; a zero or
// negative refresh interval would spin the watch loop.
func durationEnvOrDefault(key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil || parsed <= 0 {
		return fallback
	}
	return parsed
}

// intEnvOrDefault accepts zero; zero retry attempts means the retry
// decorator stays out of the provider chain.
func intEnvOrDefault(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	val, err := strconv.Atoi(raw)
	if err != nil || val < 0 {
		return fallback
	}
	return val
}

func boolEnvOrDefault(key string, fallback bool) bool {
	switch raw := strings.TrimSpace(os.Getenv(key)); {
	case raw == "":
		return fallback
	case raw == "1", strings.EqualFold(raw, "true"), strings.EqualFold(raw, "yes"):
		return true
	case raw == "0", strings.EqualFold(raw, "false"), strings.EqualFold(raw, "no"):
		return false
	default:
		return fallback
	}
}
