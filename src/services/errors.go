package services

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when no row matches the requested id.
	ErrNotFound = errors.New("record not found")

	// ErrNothingToDelete is returned by a bulk delete on an empty collection.
	ErrNothingToDelete = errors.New("nothing to delete")
)

// PersistenceError wraps a store failure: connectivity loss, constraint
// violation, malformed query or an expired query deadline.
type PersistenceError struct {
	Op     string
	Entity string
	Err    error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Entity, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
