package service

import "errors"

var (
	// ErrNoQualifyingLeads is returned when every batch ran but no lead survived.
	ErrNoQualifyingLeads = errors.New("no high-quality leads found, try a different niche or verify the location")
	// ErrInvalidRunID indicates a malformed search run identifier.
	ErrInvalidRunID = errors.New("invalid search run id")
	// ErrRunNotFound indicates there is no stored search run for the identifier.
	ErrRunNotFound = errors.New("search run not found")
)

// ValidationError indicates that caller input is unusable.
type ValidationError struct {
	Message string
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	return e.Message
}

// ModelError reports a failed call to the generative model.
type ModelError struct {
	Op       string
	Err      error
	fallback string
}

// Error returns the underlying message, or a generic one when it is empty.
func (e *ModelError) Error() string {
	if e.Err == nil || e.Err.Error() == "" {
		if e.fallback != "" {
			return e.fallback
		}
		return "model request failed"
	}
	return e.Err.Error()
}

// Unwrap exposes the transport error.
func (e *ModelError) Unwrap() error {
	return e.Err
}

func newModelError(op string, err error, fallback string) *ModelError {
	return &ModelError{Op: op, Err: err, fallback: fallback}
}
