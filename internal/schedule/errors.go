package schedule

import "errors"

var (
	// ErrConfiguration marks a defect in a stored chore definition:
	// a non-positive interval or an end date before the start date.
	// There is nothing transient to retry; callers should surface it.
	ErrConfiguration = errors.New("invalid chore configuration")

	// ErrValidation marks a malformed input record, such as an
	// unparseable date in a household snapshot.
	ErrValidation = errors.New("invalid input record")
)
