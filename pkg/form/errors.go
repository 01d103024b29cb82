package form

import "errors"

var (
	ErrMissingInput         = errors.New("form: field has no input binding")
	ErrMissingErrorDisplay  = errors.New("form: field has no error display")
	ErrUnknownField         = errors.New("form: unknown field")
	ErrInvalidConfig        = errors.New("form: invalid configuration")
	ErrNothingToAcknowledge = errors.New("form: no submission awaiting acknowledgement")
)
