package errors

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// FieldError describes a single invalid field in a scene or configuration.
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// ValidationError collects every field problem found while validating an
// input, so users can fix a scene file in one go rather than one error at a
// time.
type ValidationError struct {
	Code   Code
	Fields []FieldError
}

// NewValidation creates an empty ValidationError for the given code.
func NewValidation(code Code) *ValidationError {
	return &ValidationError{Code: code}
}

// Add records a field problem.
func (v *ValidationError) Add(field, format string, args ...any) {
	v.Fields = append(v.Fields, FieldError{Field: field, Reason: fmt.Sprintf(format, args...)})
}

// Err returns nil if no field problems were recorded, otherwise an *Error
// carrying the validation details as its cause.
func (v *ValidationError) Err() error {
	if len(v.Fields) == 0 {
		return nil
	}
	return &Error{Code: v.Code, Message: "validation failed", Cause: v}
}

// Error implements the error interface.
func (v *ValidationError) Error() string {
	parts := make([]string, len(v.Fields))
	for i, f := range v.Fields {
		parts[i] = f.Field + ": " + f.Reason
	}
	return strings.Join(parts, "; ")
}

// ValidatePath validates a user-supplied file path.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	return nil
}

// Fields returns the field problems carried by err, or nil if err holds no
// ValidationError.
func Fields(err error) []FieldError {
	var v *ValidationError
	if errors.As(err, &v) {
		return v.Fields
	}
	return nil
}
