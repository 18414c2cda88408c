package providers

import (
	"errors"
	"fmt"
	"time"
)

// ErrUpstreamUnavailable marks any failure talking to the stats provider:
// transport errors, unexpected statuses, undecodable or truncated payloads.
var ErrUpstreamUnavailable = errors.New("upstream stats provider unavailable")

// RateLimitError captures rate limit responses from upstream providers.
type RateLimitError struct {
	Provider   string
	StatusCode int
	RetryAfter time.Duration
	Remaining  string
	Message    string
}

func (e *RateLimitError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "provider rate limited"
	}
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s (status=%d)", msg, e.StatusCode)
	}
	return msg
}

// Unwrap lets callers treat rate limiting as an unavailable upstream.
func (e *RateLimitError) Unwrap() error {
	return ErrUpstreamUnavailable
}

// AsRateLimitError attempts to unwrap an error into a RateLimitError.
func AsRateLimitError(err error) (*RateLimitError, bool) {
	var rlErr *RateLimitError
	if errors.As(err, &rlErr) {
		return rlErr, true
	}
	return nil, false
}
