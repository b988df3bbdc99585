package registry

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrNotFound          = errors.New("registry: not found")
	ErrUnauthorized      = errors.New("registry: unauthorized")
	ErrRateLimited       = errors.New("registry: rate limited")
	ErrMalformedResponse = errors.New("registry: malformed response")
)

// APIError is returned for any non-2xx response from the registry.
type APIError struct {
	StatusCode int
	Path       string
	Body       string
}

func (e *APIError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("registry request %s failed with status %d", e.Path, e.StatusCode)
	}
	return fmt.Sprintf("registry request %s failed with status %d: %s", e.Path, e.StatusCode, e.Body)
}

func (e *APIError) Unwrap() error {
	switch e.StatusCode {
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrUnauthorized
	case http.StatusTooManyRequests:
		return ErrRateLimited
	}
	return nil
}

func malformed(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrMalformedResponse, fmt.Sprintf(format, args...))
}
