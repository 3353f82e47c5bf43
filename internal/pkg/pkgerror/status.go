package pkgerror

import (
	"fmt"
	"net/http"
)

// StatusError is a dispatch failure raised by the router itself, before or
// around the handler: no route, wrong method, unreadable body, rate limit.
type StatusError struct {
	status int
	err    error
}

// NewStatus creates a StatusError for the given HTTP status and cause.
func NewStatus(status int, err error) error {
	return &StatusError{status: status, err: err}
}

// Status returns the HTTP status the router reported. A nil StatusError
// reports 500.
func (e *StatusError) Status() int {
	if e == nil {
		return http.StatusInternalServerError
	}
	return e.status
}

// Error implements the error interface.
func (e *StatusError) Error() string {
	if e == nil {
		return http.StatusText(http.StatusInternalServerError)
	}
	if e.err != nil {
		return fmt.Sprintf("%d %s: %v", e.status, http.StatusText(e.status), e.err)
	}
	return fmt.Sprintf("%d %s", e.status, http.StatusText(e.status))
}

// Unwrap returns the underlying error.
func (e *StatusError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.err
}
