// Package apperror defines the error classes shared by every domain package.
// Validation failures use validator.ValidationErrors; the remaining classes
// live here so HTTP handlers can map them without importing each domain.
package apperror

import (
	"errors"
	"fmt"
)

// ErrNotFound is the class of every "record does not exist" error.
// Domain sentinels wrap it, e.g. fmt.Errorf("employee %w", ErrNotFound).
var ErrNotFound = errors.New("not found")

// ErrConflict is the class of uniqueness and state-transition conflicts.
var ErrConflict = errors.New("conflict")

// NotFound builds a domain sentinel for entity.
func NotFound(entity string) error {
	return fmt.Errorf("%s %w", entity, ErrNotFound)
}

// Conflict builds a domain conflict sentinel with the given message.
func Conflict(message string) error {
	return fmt.Errorf("%s: %w", message, ErrConflict)
}

// StoreError reports a failed read or write against the record store.
// Op names the repository operation, e.g. "employee.create".
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// Store wraps err in a StoreError. A nil err stays nil.
func Store(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StoreError{Op: op, Err: err}
}

// DispatchError reports that the email provider rejected or failed a send.
type DispatchError struct {
	Provider string
	Err      error
}

func (e *DispatchError) Error() string {
	return fmt.Sprintf("dispatch via %s: %v", e.Provider, e.Err)
}

func (e *DispatchError) Unwrap() error {
	return e.Err
}

// IsStore reports whether err is, or wraps, a StoreError.
func IsStore(err error) bool {
	var se *StoreError
	return errors.As(err, &se)
}

// IsDispatch reports whether err is, or wraps, a DispatchError.
func IsDispatch(err error) bool {
	var de *DispatchError
	return errors.As(err, &de)
}
