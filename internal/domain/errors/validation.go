package errors

import (
	"net/http"
	"sort"
	"strings"
)

// FieldErrors maps a request field to its validation messages.
type FieldErrors map[string][]string

// ValidationError is a 400 error carrying per-field details.
type ValidationError struct {
	fields FieldErrors
}

// NewValidationError creates a validation error. An empty map is allowed.
func NewValidationError(fields FieldErrors) *ValidationError {
	if fields == nil {
		fields = FieldErrors{}
	}

	return &ValidationError{fields: fields}
}

// NewFieldError is shorthand for a single failing field.
func NewFieldError(field, message string) *ValidationError {
	return NewValidationError(FieldErrors{field: {message}})
}

// Add appends a message for field.
func (e *ValidationError) Add(field, message string) {
	e.fields[field] = append(e.fields[field], message)
}

// HasErrors reports whether any field failed.
func (e *ValidationError) HasErrors() bool {
	return len(e.fields) > 0
}

// Fields returns the per-field messages.
func (e *ValidationError) Fields() FieldErrors {
	return e.fields
}

// FieldDetails satisfies the detail carrier used by the response layer.
func (e *ValidationError) FieldDetails() any {
	return e.fields
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.fields))
	for k := range e.fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+strings.Join(e.fields[k], "; "))
	}

	return "validation failed: " + strings.Join(parts, ", ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidationFailed
}

func (e *ValidationError) HTTPCode() int {
	return http.StatusBadRequest
}

func (e *ValidationError) ErrorCode() string {
	return ErrValidationFailed.ErrorCode()
}

func (e *ValidationError) Message() string {
	return ErrValidationFailed.Message()
}

func (e *ValidationError) Details() string {
	return e.Error()
}

// DetailCarrier is implemented by errors that expose structured details to clients.
type DetailCarrier interface {
	FieldDetails() any
}
