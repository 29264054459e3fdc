package rest

import (
	"errors"
	"fmt"
)

// Kind classifies a failed API call. Pages decide user-visible behavior from it:
// silent log and empty state for fetches, an error notification for mutations.
type Kind int

const (
	// KindNetwork means no usable response arrived (connection refused, DNS, EOF).
	KindNetwork Kind = iota
	// KindStatus means the backend answered with a 4xx/5xx status.
	KindStatus
	// KindDecode means the response body could not be parsed.
	KindDecode
	// KindNotFound is the 404 special case callers routinely branch on.
	KindNotFound
)

// Error is the single failure shape crossing the gateway boundary.
// Message is always safe to show to the user.
type Error struct {
	Kind    Kind
	Status  int
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("api: %s (status %d)", e.Message, e.Status)
	}
	return fmt.Sprintf("api: %s", e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// IsNotFound reports whether err represents a 404 from the backend.
func IsNotFound(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Kind == KindNotFound
}

// Reason extracts the human-readable message from any error returned by the
// gateway, falling back to the provided default for non-API failures.
func Reason(err error, fallback string) string {
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
