package feedback

import "errors"

const (
	// MsgNameRequired is shown when the name is missing or blank.
	MsgNameRequired = "Name is required."
	// MsgInvalidRating is shown when the rating is not an integer between 1 and 5.
	MsgInvalidRating = "Rating must be integer 1-5."
	// MsgSubmitted is returned on a successful submission.
	MsgSubmitted = "Feedback submitted. Thank you!"
)

var (
	// ErrValidation matches every *ValidationError via errors.Is.
	ErrValidation = errors.New("validation failed")
	// ErrStorage wraps failures of the storage layer.
	ErrStorage = errors.New("storage failure")
	// ErrDBNil is returned when the service has no database.
	ErrDBNil = errors.New("feedback service database is nil")
)

// ValidationError is a user input problem; Message is safe to show to the user.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Is reports ErrValidation as a match.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
