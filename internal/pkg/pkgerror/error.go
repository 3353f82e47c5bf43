package pkgerror

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates that the requested resource could not be found.
	ErrNotFound = errors.New("resource not found")
)

// Error is a business error: a domain rule violation raised on purpose by
// handler code.
//
// It carries a client-facing message, an optional ErrorCode, and an optional
// underlying error kept for logs.
type Error struct {
	err  error
	msg  string
	code ErrorCode
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.msg != "" {
		return e.msg
	}

	if e.err != nil {
		return e.err.Error()
	}

	return e.Code().Message()
}

// String returns a verbose representation of the error for debugging/logging.
func (e *Error) String() string {
	return fmt.Sprintf(
		"Code: %s, Status: %d, Message: %s, Underlying Error: %v",
		e.Code().Code(),
		e.Code().StatusCode(),
		e.msg,
		e.err,
	)
}

// Msg returns the client-facing message, if set.
func (e *Error) Msg() string {
	return e.msg
}

// Code returns the attached ErrorCode, or CodeInternalError when none was set.
func (e *Error) Code() ErrorCode {
	if e.code == nil {
		return CodeInternalError
	}
	return e.code
}

// HasCode reports whether an ErrorCode was attached explicitly.
func (e *Error) HasCode() bool {
	return e.code != nil
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.err
}

// StatusCode returns the HTTP status of the resolved code.
func (e *Error) StatusCode() int {
	return e.Code().StatusCode()
}

// NewBusiness creates a business error with the specified message and code.
// A nil code resolves to CodeInternalError.
func NewBusiness(msg string, code ErrorCode) error {
	return &Error{msg: msg, code: code}
}

// NewBusinessf is NewBusiness with a formatted message.
func NewBusinessf(code ErrorCode, format string, args ...any) error {
	return &Error{msg: fmt.Sprintf(format, args...), code: code}
}

// WrapBusiness creates a business error that keeps err as its cause.
func WrapBusiness(err error, msg string, code ErrorCode) error {
	return &Error{err: err, msg: msg, code: code}
}
