package sis

import (
	"errors"
	"fmt"
)

// ErrIncomplete marks a paginated fetch that ended before the reported total
// was reached. It is fatal: a truncated snapshot must never reach the
// reconciler as if it were complete.
var ErrIncomplete = errors.New("incomplete result set")

// RequestError is the terminal failure of one logical request: either a
// non-retryable response, or a retryable condition that survived the whole
// retry budget. Status is the last HTTP status observed (zero for pure
// network failures) and Attempts counts every attempt made.
type RequestError struct {
	Method   string
	Path     string
	Status   int
	Attempts int
	Err      error
}

// Error names the last observed status or underlying error.
func (e *RequestError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s %s failed after %d attempt(s): status %d", e.Method, e.Path, e.Attempts, e.Status)
	}
	return fmt.Sprintf("%s %s failed after %d attempt(s): %v", e.Method, e.Path, e.Attempts, e.Err)
}

// Unwrap exposes the underlying error, if any.
func (e *RequestError) Unwrap() error {
	return e.Err
}

// Temporary reports whether the final failure was a retryable condition
// (rate limit, server error, network failure) whose budget ran out, as
// opposed to a client error that would fail again immediately.
func (e *RequestError) Temporary() bool {
	if e.Status == 0 {
		return true
	}
	return retryableStatus(e.Status)
}

// retryableStatus reports whether an HTTP status is worth retrying: 429 and
// every 5xx. Other 4xx are client errors and surface immediately.
func retryableStatus(code int) bool {
	return code == 429 || code >= 500
}
