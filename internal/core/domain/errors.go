package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors. Every typed error below matches one of these with errors.Is.
var (
	ErrTypeMismatch   = errors.New("type mismatch")
	ErrValidation     = errors.New("validation error")
	ErrProtectedField = errors.New("protected field")
	ErrUnknownField   = errors.New("unknown field")
	ErrUniqueness     = errors.New("not unique")
	ErrAuthentication = errors.New("authentication failed")
	ErrCollaborator   = errors.New("collaborator failure")
	ErrNotFound       = errors.New("not found")
)

// TypeMismatchError reports a value whose JSON kind does not match what the field expects.
type TypeMismatchError struct {
	Field    string
	Expected string
	Actual   string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("%s must be of type %s, got %s", e.Field, e.Expected, e.Actual)
}

func (e *TypeMismatchError) Unwrap() error { return ErrTypeMismatch }

// NewTypeMismatch builds a TypeMismatchError.
func NewTypeMismatch(field, expected, actual string) *TypeMismatchError {
	return &TypeMismatchError{Field: field, Expected: expected, Actual: actual}
}

// ValidationError reports a value that has the right type but breaks a domain rule.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation: %s %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError builds a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// ProtectedFieldError is returned when a partial update touches a field that only
// dedicated operations may change.
type ProtectedFieldError struct {
	Entity string
	Field  string
}

func (e *ProtectedFieldError) Error() string {
	return fmt.Sprintf("%s.%s cannot be updated", e.Entity, e.Field)
}

func (e *ProtectedFieldError) Unwrap() error { return ErrProtectedField }

// UnknownFieldError is returned when a partial update names a field the entity does not have.
type UnknownFieldError struct {
	Entity string
	Field  string
}

func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("%s has no field %q", e.Entity, e.Field)
}

func (e *UnknownFieldError) Unwrap() error { return ErrUnknownField }

// UniquenessError is returned when a uniqueness policy rejects a value.
type UniquenessError struct {
	Field string
	Value string
}

func (e *UniquenessError) Error() string {
	return fmt.Sprintf("%s %q is already taken", e.Field, e.Value)
}

func (e *UniquenessError) Unwrap() error { return ErrUniqueness }

// CollaboratorError wraps a failure raised by an injected port. It matches both
// ErrCollaborator and the port's own error.
type CollaboratorError struct {
	Op  string
	Err error
}

func (e *CollaboratorError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Op, e.Err)
}

func (e *CollaboratorError) Unwrap() []error { return []error{ErrCollaborator, e.Err} }

// Collaborator wraps err as a CollaboratorError for op. A nil err stays nil.
func Collaborator(op string, err error) error {
	if err == nil {
		return nil
	}
	return &CollaboratorError{Op: op, Err: err}
}
