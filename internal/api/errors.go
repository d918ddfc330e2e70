package api

import (
	"errors"
	"fmt"
)

// ErrNoSession is returned when a call requiring authentication is made
// while no token is stored. The session-expired callback fires so the UI
// lands on the login view.
var ErrNoSession = errors.New("no active session")

// ErrSessionExpired is returned when the backend rejected the bearer token
// with 401 or 403. The session has already been cleared by the time the
// caller sees this error.
var ErrSessionExpired = errors.New("session expired")

// Error is a backend-reported business failure: a non-2xx response carrying
// a message body. The message is surfaced to the user verbatim.
type Error struct {
	Status  int
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("backend error (HTTP %d): %s", e.Status, e.Message)
}

// UserMessage returns the text to show in a notification.
func (e *Error) UserMessage() string {
	return e.Message
}

// IsSessionError reports whether err means the session is gone and the user
// is being redirected to login. Callers skip their own error reporting for
// these; the expiry callback already handles navigation.
func IsSessionError(err error) bool {
	return errors.Is(err, ErrNoSession) || errors.Is(err, ErrSessionExpired)
}

// AsBackendError unwraps err into *Error when the failure originated from a
// backend response body.
func AsBackendError(err error) (*Error, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
