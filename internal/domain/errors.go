package domain

import "errors"

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrUnknownDestination = errors.New("destination not available")
	ErrSampling           = errors.New("sampling failed")
	ErrInvalidCatalog     = errors.New("invalid catalog")
)

// ValidationError reports a rejected answer. Reason is shown to the user
// as-is.
type ValidationError struct {
	Field  string
	Reason string
	Err    error // optional cause, e.g. ErrUnknownDestination
}

func (e *ValidationError) Error() string { return e.Field + ": " + e.Reason }

func (e *ValidationError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrInvalidInput}
	}
	return []error{ErrInvalidInput, e.Err}
}
