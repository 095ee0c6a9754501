package apperror

import (
	"errors"
	"fmt"
)

// Error kinds. Handlers map these to HTTP status codes; usecases attach the
// caller-facing message.
var (
	ErrValidation       = errors.New("validation failed")
	ErrDuplicate        = errors.New("duplicate resource")
	ErrAuth             = errors.New("authentication failed")
	ErrNotFound         = errors.New("resource not found")
	ErrForbidden        = errors.New("forbidden")
	ErrUnsupportedMedia = errors.New("unsupported media type")
	ErrPayloadTooLarge  = errors.New("payload too large")
	ErrInternal         = errors.New("internal error")
)

// Error pairs a kind with a human-readable message. It unwraps to its kind so
// callers can branch with errors.Is.
type Error struct {
	kind    error
	message string
}

func (e *Error) Error() string {
	return e.message
}

func (e *Error) Unwrap() error {
	return e.kind
}

// New returns an error of the given kind carrying message.
func New(kind error, message string) error {
	return &Error{kind: kind, message: message}
}

// Newf is New with fmt.Sprintf formatting.
func Newf(kind error, format string, args ...interface{}) error {
	return &Error{kind: kind, message: fmt.Sprintf(format, args...)}
}

// Wrap keeps err's text visible while tagging it with kind.
func Wrap(kind error, err error) error {
	if err == nil {
		return nil
	}
	return &Error{kind: kind, message: err.Error()}
}
