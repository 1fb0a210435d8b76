package insights

import "errors"

// ErrNotFound indicates the backend has no insight with the requested id.
var ErrNotFound = errors.New("insight not found")

// APIError is a non-success response from the backend. Error returns Message verbatim.
type APIError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *APIError) Error() string { return e.Message }

func (e *APIError) Unwrap() error { return e.Err }
