package core

import "github.com/pkg/errors"

// FieldError reports a problem with one field of a request payload.
type FieldError struct {
	Field string
	Error string
}

// ValidationError is a request error carrying optional per-field detail.
// The HTTP layer maps it to a 400 response; the registrar uses it for
// cross-store checks (unknown batch, full batch) that the per-entity
// validators cannot see.
type ValidationError struct {
	Err    error
	Fields []FieldError
}

func NewValidationError(err error, flds ...FieldError) error {
	return &ValidationError{err, flds}
}

func (err ValidationError) Error() string {
	if err.Err == nil {
		return ""
	}
	return err.Err.Error()
}

// shutdown marks an error as unrecoverable. The server's error handler
// brings the process down gracefully when it catches one.
type shutdown struct {
	message string
}

func NewShutdownError(msg string) error {
	return &shutdown{message: msg}
}

func (s shutdown) Error() string {
	return s.message
}

// IsShutdown reports whether err, at its cause, is a shutdown error.
func IsShutdown(err error) bool {
	_, ok := errors.Cause(err).(*shutdown)
	return ok
}
