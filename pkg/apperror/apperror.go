package apperror

import (
	"errors"
	"fmt"
)

// Code classifies an application error so callers can branch on the kind of
// failure without matching on message text.
type Code string

const (
	CodeBadRequest        Code = "BAD_REQUEST"
	CodeInvalidArgument   Code = "INVALID_ARGUMENT"
	CodeDuplicateRecord   Code = "DUPLICATE_RECORD"
	CodeNotFound          Code = "NOT_FOUND"
	CodeConflict          Code = "CONFLICT"
	CodeIdentityCreation  Code = "IDENTITY_CREATION"
	CodeIdentityRole      Code = "IDENTITY_ROLE"
	CodeResourceExhausted Code = "RESOURCE_EXHAUSTED"
	CodeUnauthorized      Code = "UNAUTHORIZED"
	CodeInternal          Code = "INTERNAL"
)

type Error struct {
	Code    Code
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New creates an error with the given code and message.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Newf is New with a formatted message.
func Newf(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap attaches a code and message to an underlying error.
func Wrap(err error, code Code, message string) *Error {
	return &Error{Code: code, Message: message, Err: err}
}

// CodeOf returns the code of the outermost *Error in the chain, or CodeInternal
// when err carries no code.
func CodeOf(err error) Code {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return CodeInternal
}

// HasCode reports whether err carries the given code.
func HasCode(err error, code Code) bool {
	return err != nil && CodeOf(err) == code
}

// IsIdentity reports whether err came from the identity provider.
func IsIdentity(err error) bool {
	code := CodeOf(err)
	return err != nil && (code == CodeIdentityCreation || code == CodeIdentityRole)
}
