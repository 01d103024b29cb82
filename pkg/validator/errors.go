package validator

import "errors"

var (
	// ErrValidationFailed is returned when validation fails but no specific error is provided.
	ErrValidationFailed = errors.New("validation failed")

	// ErrInvalidDate is returned by ParseDate when no supported layout matches.
	ErrInvalidDate = errors.New("invalid date")
)
