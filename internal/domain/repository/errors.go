package repository

import "errors"

// Store errors classified at the data-access boundary. Handlers map these onto
// the HTTP error taxonomy; raw driver errors never cross this package.
var (
	// ErrNotFound reports that no record exists for the given identifier.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateEmail reports a violation of the users.email unique constraint.
	ErrDuplicateEmail = errors.New("email already exists")

	// ErrUnavailable reports that the data store could not be reached, or that the
	// operation exceeded its deadline waiting on the pool or the store.
	ErrUnavailable = errors.New("data store unavailable")
)
