package config

import "time"

const (
	envSports        = "SPORTS"
	envProvider      = "PROVIDER"
	envBaseURL       = "SCOREBOARD_BASE_URL"
	envTimezone      = "DISPLAY_TIMEZONE"
	envDate          = "SCOREBOARD_DATE"
	envLiveInterval  = "LIVE_REFRESH_INTERVAL"
	envIdleInterval  = "IDLE_REFRESH_INTERVAL"
	envRetryAttempts = "FETCH_RETRY_ATTEMPTS"
	envRetryBackoff  = "FETCH_RETRY_BACKOFF"
	envMetricsOn     = "METRICS_ENABLED"
	envMetricsPort   = "METRICS_PORT"
	envOtelEndpoint  = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService   = "OTEL_SERVICE_NAME"
	envOtelInsecure  = "OTEL_EXPORTER_OTLP_INSECURE"

	defaultProvider = "espn"
	// Short cadence while any game is live, long cadence otherwise.
	defaultLiveInterval = 5 * Duration(time.Second)
	defaultIdleInterval = 60 * Duration(time.Second)
	defaultMetricsPort  = "9090"
)
