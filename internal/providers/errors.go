package providers

import (
	"errors"
	"fmt"
)

// ErrProviderUnavailable signals that no usable provider is configured.
var ErrProviderUnavailable = errors.New("provider unavailable")

// ErrUnknownSport signals a sport key the provider has no endpoint for.
var ErrUnknownSport = errors.New("unknown sport")

// UpstreamError captures a non-2xx response from the scoreboard API.
type UpstreamError struct {
	Sport      string
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("%s scoreboard: unexpected status %d: %s", e.Sport, e.StatusCode, e.Body)
	}
	return fmt.Sprintf("%s scoreboard: unexpected status %d", e.Sport, e.StatusCode)
}

// AsUpstreamError attempts to unwrap an error into an UpstreamError.
func AsUpstreamError(err error) (*UpstreamError, bool) {
	var upErr *UpstreamError
	if errors.As(err, &upErr) {
		return upErr, true
	}
	return nil, false
}
