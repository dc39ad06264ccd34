package crumb

import (
	"errors"
	"fmt"
)

// ErrorType categorizes crumb errors.
type ErrorType int

const (
	// ErrInvalidPath indicates a malformed crumb path (unbalanced delimiters,
	// duplicate or empty argument names, partial-component arguments).
	ErrInvalidPath ErrorType = iota
	// ErrUsage indicates an invalid call: unknown argument, enumeration on a
	// fully bound crumb, or an out-of-order request.
	ErrUsage
	// ErrNotAbsolute indicates an operation that requires an absolute crumb
	// path was called on a relative one.
	ErrNotAbsolute
	// ErrNotFound indicates a directory required by enumeration does not
	// exist on the filesystem.
	ErrNotFound
	// ErrAlreadyExists indicates a destination path already exists and
	// overwriting was not allowed.
	ErrAlreadyExists
	// ErrBadPattern indicates an invalid glob or regular expression filter.
	ErrBadPattern
	// ErrMissingArgs indicates a values map that leaves ancestor arguments
	// open, or a destination crumb that cannot be fully resolved.
	ErrMissingArgs
)

// Error represents a crumb engine error with context.
type Error struct {
	// Type categorizes the error.
	Type ErrorType
	// Message is the error message.
	Message string
	// Path is the crumb path or filesystem path related to the error.
	Path string
	// Arg is the argument name related to the error (if any).
	Arg string
	// Cause is the underlying error (optional).
	Cause error
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := e.Message
	if e.Arg != "" {
		msg = fmt.Sprintf("%s (argument: %s)", msg, e.Arg)
	}
	if e.Path != "" {
		msg = fmt.Sprintf("%s (path: %s)", msg, e.Path)
	}
	if e.Cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

// Unwrap returns the underlying cause for errors.Is/As support.
func (e *Error) Unwrap() error {
	return e.Cause
}

// IsNotFound reports whether err is a crumb filesystem not-found error.
func IsNotFound(err error) bool {
	var ce *Error
	return errors.As(err, &ce) && ce.Type == ErrNotFound
}

// IsUsage reports whether err is a crumb usage error.
func IsUsage(err error) bool {
	var ce *Error
	return errors.As(err, &ce) && ce.Type == ErrUsage
}

// NewUsageError creates a usage Error with argument context, for callers
// outside the package that detect misuse against a Crumb value.
func NewUsageError(message, arg string) *Error {
	return newErrorWithArg(ErrUsage, message, arg)
}

// newError creates a new Error with the given type and message.
func newError(typ ErrorType, message string) *Error {
	return &Error{Type: typ, Message: message}
}

// newErrorWithPath creates an Error with path context.
func newErrorWithPath(typ ErrorType, message, path string) *Error {
	return &Error{Type: typ, Message: message, Path: path}
}

// newErrorWithArg creates an Error with argument context.
func newErrorWithArg(typ ErrorType, message, arg string) *Error {
	return &Error{Type: typ, Message: message, Arg: arg}
}

// wrapError creates an Error wrapping an underlying cause.
func wrapError(typ ErrorType, message, path string, cause error) *Error {
	return &Error{Type: typ, Message: message, Path: path, Cause: cause}
}
