package app

import "fmt"

// AppErrorType represents the type of application error.
type AppErrorType int

const (
	// SpecInvalid indicates a crumb path argument could not be parsed.
	SpecInvalid AppErrorType = iota
	// ListFailed indicates an enumeration operation failed.
	ListFailed
	// CompareFailed indicates an intersection or difference failed.
	CompareFailed
	// TransferFailed indicates a copy or link operation failed.
	TransferFailed
	// MktreeFailed indicates directory tree creation failed.
	MktreeFailed
	// ValuesFileInvalid indicates a values file could not be read or parsed.
	ValuesFileInvalid
)

// AppError represents an application-layer error.
type AppError struct {
	// Type is the error type.
	Type AppErrorType
	// Message is the error message.
	Message string
	// Cause is the underlying error.
	Cause error
}

// Error returns the error message.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// NewAppError creates a new AppError.
func NewAppError(errType AppErrorType, message string, cause error) *AppError {
	return &AppError{
		Type:    errType,
		Message: message,
		Cause:   cause,
	}
}

// NewSpecError creates a crumb spec error.
func NewSpecError(message string, cause error) *AppError {
	return NewAppError(SpecInvalid, message, cause)
}

// NewListError creates an enumeration error.
func NewListError(message string, cause error) *AppError {
	return NewAppError(ListFailed, message, cause)
}

// NewCompareError creates a comparison error.
func NewCompareError(message string, cause error) *AppError {
	return NewAppError(CompareFailed, message, cause)
}

// NewTransferError creates a transfer error.
func NewTransferError(message string, cause error) *AppError {
	return NewAppError(TransferFailed, message, cause)
}

// NewMktreeError creates a tree creation error.
func NewMktreeError(message string, cause error) *AppError {
	return NewAppError(MktreeFailed, message, cause)
}

// NewValuesFileError creates a values file error.
func NewValuesFileError(message string, cause error) *AppError {
	return NewAppError(ValuesFileInvalid, message, cause)
}
