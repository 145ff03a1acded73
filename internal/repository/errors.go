package repository

import "errors"

// Sentinel errors surfaced by repositories. Callers check them with
// errors.Is; anything else is an infrastructure failure.
var (
	// ErrNotFound signals that a looked-up record does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrConflict signals a uniqueness violation, such as a duplicate email.
	ErrConflict = errors.New("record already exists")
)
