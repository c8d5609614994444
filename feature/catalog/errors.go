package catalog

import "errors"

// ErrNotFound is returned when a referenced identity is absent from the
// store. No network call is attempted for it.
var ErrNotFound = errors.New("book not found")

// ValidationError reports malformed user input, rejected before any state
// mutation or network call.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}
