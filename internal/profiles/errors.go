package profiles

import "errors"

var (
	// ErrNotFound indicates no profile exists for the given email.
	ErrNotFound = errors.New("profile not found")

	// ErrInvalidInput indicates a required field was missing or blank.
	ErrInvalidInput = errors.New("invalid input")
)
