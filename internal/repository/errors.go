// Package repository defines error types shared across repositories.
// Handlers use these to pick HTTP status codes: a *ValidationError means the
// request body never reached storage and maps to 400, ErrRoomNotFound maps
// to 404, and anything else is treated as a storage failure (500) whose
// detail is logged but never echoed back to the client.
package repository

import (
	"errors"
	"fmt"
)

// ErrRoomNotFound is returned when a public room id does not resolve to a
// rooms row. A review is never persisted against an unknown room.
var ErrRoomNotFound = errors.New("room not found")

// ValidationError reports a malformed or missing request field. It is
// always produced before any storage access, so callers can treat it as a
// guarantee of zero side effects.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
