package web

import "errors"

// Error is used to pass an error during the request through the
// application with web specific context.
type Error struct {
	Err    error
	Status int
	Fields map[string]string
}

// NewRequestError wraps a provided error with an HTTP status code. This
// function should be used when handlers encounter expected errors.
func NewRequestError(err error, status int) error {
	return &Error{Err: err, Status: status}
}

func (e *Error) Error() string {
	return e.Err.Error()
}

// IsRequestError checks if an error of type Error exists in the chain.
func IsRequestError(err error) (*Error, bool) {
	var re *Error
	if errors.As(err, &re) {
		return re, true
	}

	return nil, false
}
