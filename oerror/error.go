package oerror

import "fmt"

// SimError is the error type returned by the simulation packages when a configuration or buffer
// operation cannot be completed.
type SimError struct {
	Err string
}

// New creates a new SimError from the format string and arguments passed.
func New(format string, args ...any) *SimError {
	return &SimError{Err: fmt.Sprintf(format, args...)}
}

func (e *SimError) Error() string {
	return e.Err
}
