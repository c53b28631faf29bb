package ats

import (
	"errors"
	"fmt"
	"time"
)

var ErrNotFound = errors.New("not found")

// ValidationError reports a user-correctable problem with the uploaded file.
// No side effects have happened by the time one is returned.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// ThrottleError reports that the per-user hourly quota is exhausted.
type ThrottleError struct {
	RetryAfter time.Duration
}

func (e *ThrottleError) Error() string {
	return fmt.Sprintf("rate limit exceeded, retry after %s", e.RetryAfter.Round(time.Second))
}

// AdapterError wraps a failure from the remote scoring service. The pipeline
// surfaces it to the caller and persists nothing.
type AdapterError struct {
	Err error
}

func (e *AdapterError) Error() string {
	return fmt.Sprintf("ats adapter: %v", e.Err)
}

func (e *AdapterError) Unwrap() error { return e.Err }
