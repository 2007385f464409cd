package api

import (
	"errors"
	"net/http"

	"github.com/mveldre/rentahouse/internal/common"
)

// ErrUnavailable indicates the server could not be reached at all
// (connection refused, DNS failure, timeout).
var ErrUnavailable = errors.New("server unavailable")

// genericMessage is used when an error response carries no parseable
// "error" field.
const genericMessage = "API error"

// Error is a protocol-level failure: the server answered with a non-2xx
// status. Message carries the server-provided "error" field when the body
// was parseable JSON, the generic fallback otherwise.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return genericMessage
}

// Unwrap maps well-known statuses onto shared sentinels so callers can use
// errors.Is without depending on this package's concrete type.
func (e *Error) Unwrap() error {
	switch e.Status {
	case http.StatusUnauthorized:
		return common.ErrUnauthorized
	case http.StatusNotFound:
		return common.ErrNotFound
	default:
		return nil
	}
}
