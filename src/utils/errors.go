package utils

import (
	"errors"
	"fmt"
)

// ErrMovieNotFound signals a missing movie id on detail, update and delete.
var ErrMovieNotFound = errors.New("movie not found")

// ValidationError reports ids referenced by a write that do not exist in the
// corresponding reference kind. Nothing is persisted when it is returned.
type ValidationError struct {
	Field      string
	MissingIDs []uint
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("unknown %s: %v", e.Field, e.MissingIDs)
}
