package rest

import (
	"errors"
	"fmt"
)

// ErrTimeout marks requests that hit the per-request deadline. Surfaced
// to the user as a slow-connection notification, distinct from server
// failures.
var ErrTimeout = errors.New("request timed out")

// APIError is a non-2xx response from the dashboard API. The Detail
// field carries the backend's error message when one was decodable.
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("api error: status %d", e.StatusCode)
	}
	return fmt.Sprintf("api error: status %d: %s", e.StatusCode, e.Detail)
}

// IsStatus reports whether err is an APIError with the given status.
func IsStatus(err error, status int) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == status
	}
	return false
}
