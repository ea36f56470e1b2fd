package shared

import "fmt"

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// Is reports whether target carries the same code, so that errors.Is matches
// any DomainError of a given kind and not only the sentinel pointer.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Error codes
const (
	CodeInvalidArgument = "INVALID_ARGUMENT"
	CodeNotFound        = "NOT_FOUND"
	CodeUnauthorized    = "UNAUTHORIZED"
)

// Common domain errors
var (
	ErrInvalidArgument = NewDomainError(CodeInvalidArgument, "Invalid argument")
	ErrNotFound        = NewDomainError(CodeNotFound, "Resource not found")
	ErrUnauthorized    = NewDomainError(CodeUnauthorized, "Not authorized to perform this action")
)

// NewInvalidArgumentError creates an INVALID_ARGUMENT error with the given message
func NewInvalidArgumentError(format string, args ...any) *DomainError {
	return NewDomainError(CodeInvalidArgument, fmt.Sprintf(format, args...))
}
