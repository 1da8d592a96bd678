package api

import (
	"errors"
	"strings"
)

var (
	// ErrUnavailable marks transport-level failures: the request never
	// produced a well-formed response.
	ErrUnavailable = errors.New("server unavailable")

	// ErrNotAuthenticated marks actions that require a session the
	// client does not have.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrNotFound marks lookups for identifiers the backend does not know.
	ErrNotFound = errors.New("not found")
)

// RejectionError is a well-formed backend response that signals failure.
// Message carries the server-provided reason; Issues carries the optional
// per-field validation list.
type RejectionError struct {
	Message string
	Issues  []string
}

func (e *RejectionError) Error() string {
	if len(e.Issues) == 0 {
		return e.Message
	}
	if e.Message == "" {
		return strings.Join(e.Issues, ", ")
	}
	return e.Message + ": " + strings.Join(e.Issues, ", ")
}
