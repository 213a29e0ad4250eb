package store

import "errors"

var (
	// ErrNotFound is returned when a requested record does not exist in the
	// local replica.
	ErrNotFound = errors.New("record not found in local replica")

	// ErrUnknownField is returned by QueryByField for a field that is not an
	// indexed envelope column.
	ErrUnknownField = errors.New("field is not queryable")
)
