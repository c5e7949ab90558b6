package registry

import "errors"

var (
	// ErrNotFound is returned when no vessel exists for the given id.
	ErrNotFound = errors.New("vessel not found")

	// ErrInvalidName is returned when a vessel name fails validation.
	ErrInvalidName = errors.New("invalid vessel name")

	// ErrInTransaction is returned when deleting a vessel that has an open transaction.
	ErrInTransaction = errors.New("vessel has an open transaction")
)
