package apperr

import "errors"

// ValidationError is raised when required input, usually the caller identity, is missing.
type ValidationError struct {
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func NewValidation(msg string) *ValidationError {
	return &ValidationError{Message: msg}
}

func NewValidationWrap(msg string, err error) *ValidationError {
	return &ValidationError{Message: msg, Err: err}
}

type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

func NewNotFound(msg string) *NotFoundError {
	return &NotFoundError{Message: msg}
}

type ForbiddenError struct {
	Message string
}

func (e *ForbiddenError) Error() string {
	return e.Message
}

func NewForbidden(msg string) *ForbiddenError {
	return &ForbiddenError{Message: msg}
}

// InternalError hides the cause behind a fixed message. The cause is kept for
// logging and errors.Is/As, never for the response body.
type InternalError struct {
	Message string
	Err     error
}

func (e *InternalError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *InternalError) Unwrap() error {
	return e.Err
}

func NewInternal(msg string, err error) *InternalError {
	return &InternalError{Message: msg, Err: err}
}

// Wrap passes validation, not-found and forbidden errors through untouched and
// turns anything else into an InternalError carrying msg.
func Wrap(msg string, err error) error {
	if err == nil {
		return nil
	}
	if IsExpected(err) {
		return err
	}
	var ie *InternalError
	if errors.As(err, &ie) {
		return err
	}
	return NewInternal(msg, err)
}

// IsExpected reports whether err is one of the cheap sanity errors that are
// surfaced verbatim to the caller.
func IsExpected(err error) bool {
	var ve *ValidationError
	var nf *NotFoundError
	var fe *ForbiddenError
	return errors.As(err, &ve) || errors.As(err, &nf) || errors.As(err, &fe)
}
