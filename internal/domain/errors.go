package domain

import "errors"

// Sentinel error kinds. Operations return errors created with NotFound,
// Conflict, Invalid or Forbidden so callers can classify them with errors.Is
// while still getting the human-readable message from Error().
var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrInvalidInput = errors.New("invalid input")
	ErrForbidden    = errors.New("forbidden")
)

type kindError struct {
	kind error
	msg  string
}

func (e *kindError) Error() string { return e.msg }

func (e *kindError) Unwrap() error { return e.kind }

// NotFound returns an error that matches ErrNotFound and reads as msg.
func NotFound(msg string) error { return &kindError{kind: ErrNotFound, msg: msg} }

// Conflict returns an error that matches ErrConflict and reads as msg.
func Conflict(msg string) error { return &kindError{kind: ErrConflict, msg: msg} }

// Invalid returns an error that matches ErrInvalidInput and reads as msg.
func Invalid(msg string) error { return &kindError{kind: ErrInvalidInput, msg: msg} }

// Forbidden returns an error that matches ErrForbidden and reads as msg.
func Forbidden(msg string) error { return &kindError{kind: ErrForbidden, msg: msg} }
