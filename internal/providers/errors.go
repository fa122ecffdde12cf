package providers

import (
	"errors"
	"fmt"
	"time"
)

// ErrProviderUnavailable reports a provider that is not wired or already closed.
var ErrProviderUnavailable = errors.New("provider unavailable")

// ErrGameNotFound reports a game search that exhausted its candidates.
// It is a non-fatal outcome; callers decide how to surface it.
var ErrGameNotFound = errors.New("game not found")

// StatusError captures a non-2xx HTTP response from an upstream provider.
// It is surfaced as-is; retry policy is a caller concern.
type StatusError struct {
	Provider   string
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "provider request failed"
	}
	return fmt.Sprintf("%s: %s (status=%d)", e.Provider, msg, e.StatusCode)
}

// AsStatusError attempts to unwrap an error into a StatusError.
func AsStatusError(err error) (*StatusError, bool) {
	var stErr *StatusError
	if errors.As(err, &stErr) {
		return stErr, true
	}
	return nil, false
}

// UpstreamShapeError reports a required field absent or structurally
// malformed in a parsed upstream response. It indicates an upstream contract
// change and is never retried.
type UpstreamShapeError struct {
	Provider string
	Field    string
	Message  string
}

func (e *UpstreamShapeError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "missing required field"
	}
	return fmt.Sprintf("%s: %s: %s", e.Provider, e.Field, msg)
}

// AsUpstreamShapeError attempts to unwrap an error into an UpstreamShapeError.
func AsUpstreamShapeError(err error) (*UpstreamShapeError, bool) {
	var shapeErr *UpstreamShapeError
	if errors.As(err, &shapeErr) {
		return shapeErr, true
	}
	return nil, false
}

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

// AsRateLimitError attempts to unwrap an error into a RateLimitError.
func AsRateLimitError(err error) (*RateLimitError, bool) {
	var rlErr *RateLimitError
	if errors.As(err, &rlErr) {
		return rlErr, true
	}
	return nil, false
}
