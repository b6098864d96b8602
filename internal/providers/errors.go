package providers

import (
	"errors"
	"fmt"
)

var (
	// ErrFetchFailed matches every upstream failure kind via errors.Is.
	ErrFetchFailed = errors.New("upstream fetch failed")
	// ErrProviderUnavailable is returned when no provider is configured.
	ErrProviderUnavailable = errors.New("provider unavailable")
)

// NetworkError captures transport failures (DNS, connection, timeout, cancellation).
type NetworkError struct {
	Provider string
	Query    string
	Err      error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s: request %q failed: %v", e.Provider, e.Query, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

func (e *NetworkError) Is(target error) bool { return target == ErrFetchFailed }

// HTTPError captures non-200 upstream responses.
type HTTPError struct {
	Provider   string
	Query      string
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	msg := fmt.Sprintf("%s: request %q returned status %d", e.Provider, e.Query, e.StatusCode)
	if e.Body != "" {
		msg += ": " + e.Body
	}
	return msg
}

func (e *HTTPError) Is(target error) bool { return target == ErrFetchFailed }

// DecodeError captures malformed or incomplete upstream bodies.
type DecodeError struct {
	Provider string
	Query    string
	Err      error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s: decoding %q: %v", e.Provider, e.Query, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

func (e *DecodeError) Is(target error) bool { return target == ErrFetchFailed }

// Kind names the failure class for logs and metrics.
func Kind(err error) string {
	var (
		netErr    *NetworkError
		httpErr   *HTTPError
		decodeErr *DecodeError
	)
	switch {
	case err == nil:
		return ""
	case errors.As(err, &netErr):
		return "network"
	case errors.As(err, &httpErr):
		return "http"
	case errors.As(err, &decodeErr):
		return "decode"
	default:
		return "other"
	}
}
