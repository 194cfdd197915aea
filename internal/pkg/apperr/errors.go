// Package apperr holds the error taxonomy shared by repositories, services and
// handlers. Handlers translate these into HTTP statuses in pkg/response.
package apperr

import (
	"errors"
	"fmt"
)

// ValidationError is bad or inconsistent client input. Detected before any write.
type ValidationError struct {
	Msg    string
	Fields map[string]string
}

func (e *ValidationError) Error() string { return e.Msg }

// NotFoundError means a referenced id does not resolve.
type NotFoundError struct {
	Msg string
}

func (e *NotFoundError) Error() string { return e.Msg }

// ForbiddenError means the signed-in user may not act on the resource.
type ForbiddenError struct {
	Msg string
}

func (e *ForbiddenError) Error() string { return e.Msg }

// ConflictError means the row changed underneath a compare-and-swap update.
type ConflictError struct {
	Msg string
}

func (e *ConflictError) Error() string { return e.Msg }

// StorageError wraps an underlying data-access failure.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

func Validation(msg string) error { return &ValidationError{Msg: msg} }

func Validationf(format string, args ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// ValidationFields carries the per-field validator tags alongside the message.
func ValidationFields(msg string, fields map[string]string) error {
	return &ValidationError{Msg: msg, Fields: fields}
}

func NotFound(msg string) error { return &NotFoundError{Msg: msg} }

func Forbidden(msg string) error { return &ForbiddenError{Msg: msg} }

func Conflict(msg string) error { return &ConflictError{Msg: msg} }

func Storage(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StorageError{Op: op, Err: err}
}

func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

func IsForbidden(err error) bool {
	var f *ForbiddenError
	return errors.As(err, &f)
}

func IsConflict(err error) bool {
	var c *ConflictError
	return errors.As(err, &c)
}

func IsStorage(err error) bool {
	var s *StorageError
	return errors.As(err, &s)
}
