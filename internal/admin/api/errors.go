package api

import (
	"errors"
	"fmt"
)

// ErrSessionExpired is returned for any 401 response. By the time a caller
// sees it, the stored token is already cleared and the session-expired hook
// has fired; callers still must handle the error themselves.
var ErrSessionExpired = errors.New("session expired")

// APIError carries a non-2xx response. Message is the server-provided
// message body when present, otherwise a generic fallback.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (%d): %s", e.Status, e.Message)
}

// Message extracts a user-presentable message from err: the server message
// for APIError, or fallback for anything else (network failures, timeouts).
func Message(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
