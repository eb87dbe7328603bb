// Package apperr defines the error types shared by the study engine.
//
// Callers match them with errors.As or the Is* helpers; every other error
// returned by the engine is a wrapped storage failure.
package apperr

import (
	"errors"
	"fmt"
)

// ValidationError reports input rejected before any state was touched,
// such as a rating outside 0-5 or an unknown component name.
type ValidationError struct {
	Field  string
	Value  any
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %v: %s", e.Field, e.Value, e.Reason)
}

// NotFoundError reports a reference to a flashcard, question, or plan day
// that does not exist.
type NotFoundError struct {
	Entity string
	ID     any
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %v not found", e.Entity, e.ID)
}

// StateConflictError reports an operation that would move the study plan
// out of order, such as completing a day ahead of the current day.
type StateConflictError struct {
	Op     string
	Reason string
}

func (e *StateConflictError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Reason)
}

// Invalid builds a ValidationError.
func Invalid(field string, value any, reason string) error {
	return &ValidationError{Field: field, Value: value, Reason: reason}
}

// NotFound builds a NotFoundError.
func NotFound(entity string, id any) error {
	return &NotFoundError{Entity: entity, ID: id}
}

// Conflict builds a StateConflictError.
func Conflict(op, format string, args ...any) error {
	return &StateConflictError{Op: op, Reason: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err wraps a ValidationError.
func IsValidation(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}

// IsNotFound reports whether err wraps a NotFoundError.
func IsNotFound(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}

// IsConflict reports whether err wraps a StateConflictError.
func IsConflict(err error) bool {
	var target *StateConflictError
	return errors.As(err, &target)
}
