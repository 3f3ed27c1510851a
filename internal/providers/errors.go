package providers

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

var (
	// ErrProviderUnavailable is returned when a wrapper has no inner provider.
	ErrProviderUnavailable = errors.New("provider unavailable")
	// ErrMalformedResponse marks payloads that could not be decoded.
	ErrMalformedResponse = errors.New("malformed provider response")
)

// StatusError is a non-2xx upstream response.
type StatusError struct {
	Provider   string
	Endpoint   string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	msg := fmt.Sprintf("%s %s: unexpected status %d", e.Provider, e.Endpoint, e.StatusCode)
	if e.Body != "" {
		msg += ": " + e.Body
	}
	return msg
}

// RateLimitError captures rate limit responses from upstream providers.
type RateLimitError struct {
	Provider   string
	StatusCode int
	RetryAfter time.Duration
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

// AsStatusError attempts to unwrap an error into a StatusError.
func AsStatusError(err error) (*StatusError, bool) {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr, true
	}
	return nil, false
}

// IsPermanent reports whether retrying err cannot succeed: client errors other than 429,
// and malformed payloads.
func IsPermanent(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrMalformedResponse) || errors.Is(err, ErrProviderUnavailable) {
		return true
	}
	if statusErr, ok := AsStatusError(err); ok {
		code := statusErr.StatusCode
		return code >= 400 && code < 500 && code != http.StatusTooManyRequests
	}
	return false
}
