package feedback

import "errors"

var (
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
	// ErrConstraintViolation is returned when a row would break the rating range.
	ErrConstraintViolation = errors.New("rating must be between 1 and 5")
	// ErrEntryNil is returned when Insert is called without an entry.
	ErrEntryNil = errors.New("feedback entry is nil")
)
