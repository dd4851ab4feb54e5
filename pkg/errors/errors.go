// Package errors gives adjustable's failures a machine-readable code.
//
// Every error that crosses a package boundary is an *Error carrying a [Code].
// Codes group into kinds that the CLI and the HTTP server branch on:
//
//   - KindInvalid: the caller sent something wrong (INVALID_*)
//   - KindNotFound: a named file or route does not exist (*NOT_FOUND)
//   - KindUnsupported: a valid request for something not implemented
//   - KindInternal: everything else, including a list-layout host that
//     broke its contract mid-pass (HOST_CONTRACT)
//
// The layout algorithm's policy fallbacks (nothing adjustable, several
// adjustable items, a partially realized list) are not errors at all.
//
//	err := errors.New(errors.ErrCodeInvalidScene, "viewport height must be positive, got %d", h)
//	if errors.Is(err, errors.ErrCodeInvalidScene) {
//	    // ...
//	}
//	err = errors.Wrap(errors.ErrCodeFileNotFound, cause, "scene %s not found", path)
package errors

import (
	"errors"
	"fmt"
)

// Code is a machine-readable error code.
type Code string

const (
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidScene  Code = "INVALID_SCENE"
	ErrCodeInvalidConfig Code = "INVALID_CONFIG"
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"
	ErrCodeInvalidPath   Code = "INVALID_PATH"

	ErrCodeNotFound     Code = "NOT_FOUND"
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

	// ErrCodeHostContract reports a host that returned impossible measurements.
	ErrCodeHostContract Code = "HOST_CONTRACT"

	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
)

// Kind groups codes by who has to act on them.
type Kind int

const (
	KindInternal Kind = iota
	KindInvalid
	KindNotFound
	KindUnsupported
)

var kinds = map[Code]Kind{
	ErrCodeInvalidInput:  KindInvalid,
	ErrCodeInvalidScene:  KindInvalid,
	ErrCodeInvalidConfig: KindInvalid,
	ErrCodeInvalidFormat: KindInvalid,
	ErrCodeInvalidPath:   KindInvalid,
	ErrCodeNotFound:      KindNotFound,
	ErrCodeFileNotFound:  KindNotFound,
	ErrCodeUnsupported:   KindUnsupported,
}

// Kind returns the kind of c. Unknown codes are internal.
func (c Code) Kind() Kind { return kinds[c] }

// Error is a coded error with an optional cause.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause == nil {
		return string(e.Code) + ": " + e.Message
	}
	return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
}

func (e *Error) Unwrap() error { return e.Cause }

// New returns an *Error with a formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap returns an *Error with a formatted message around cause.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// outermost returns the first *Error in err's chain.
func outermost(err error) (*Error, bool) {
	var e *Error
	ok := errors.As(err, &e)
	return e, ok
}

// Is reports whether the outermost *Error in err's chain has code.
func Is(err error, code Code) bool {
	e, ok := outermost(err)
	return ok && e.Code == code
}

// GetCode returns the code of the outermost *Error in err's chain, or "".
func GetCode(err error) Code {
	if e, ok := outermost(err); ok {
		return e.Code
	}
	return ""
}

// KindOf returns the kind of err. Errors without a code are internal.
func KindOf(err error) Kind { return GetCode(err).Kind() }

// UserMessage returns err's message without the code prefix. Plain errors
// are returned as-is.
func UserMessage(err error) string {
	if e, ok := outermost(err); ok {
		return e.Message
	}
	return err.Error()
}
