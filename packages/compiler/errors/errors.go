// Package errors contains helper functions for wrapping errors with stack traces
// and for reporting programmer errors such as missing required arguments.
package errors

import (
	"errors"
	"fmt"

	goerrors "github.com/go-errors/errors"
)

// New creates a new error with a stack trace.
func New(message string) error {
	return goerrors.Wrap(errors.New(message), 1)
}

// Errorf creates a new error and wraps in an Error type that contains the stack trace.
func Errorf(message string, args ...interface{}) error {
	err := fmt.Errorf(message, args...)
	return goerrors.Wrap(err, 1)
}

// WithStackTrace wraps the given error in an Error type that contains the stack trace. If the given error already has a stack trace,
// it is used directly. If the given error is nil, return nil.
func WithStackTrace(err error) error {
	if err == nil {
		return nil
	}

	return goerrors.Wrap(err, 1)
}

// WithStackTraceAndPrefix wraps the given error in an Error type that contains the stack trace and has the given message prepended as part of
// the error message. If the given error is nil, return nil.
func WithStackTraceAndPrefix(err error, message string, args ...interface{}) error {
	if err == nil {
		return nil
	}

	return goerrors.WrapPrefix(err, fmt.Sprintf(message, args...), 1)
}

// ErrorWithStackTrace returns a string that contains both the error message and the callstack.
func ErrorWithStackTrace(err error) string {
	if err == nil {
		return ""
	}

	var goErr *goerrors.Error
	if errors.As(err, &goErr) {
		return goErr.ErrorStack()
	}

	return err.Error()
}
