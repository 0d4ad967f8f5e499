package service

import (
	"errors"
	"fmt"
)

// ErrServiceFailure marks unexpected failures inside a service operation.
// The API layer maps it to HTTP 500 Internal Server Error.
var ErrServiceFailure = errors.New("service operation failed")

// ServiceError wraps an unexpected error with the operation that produced it.
// Expected conditions (validation, not found, duplicates, bad credentials)
// are returned as their sentinel errors instead.
type ServiceError struct {
	Operation string
	Message   string
	Err       error
}

// Error implements the error interface for ServiceError.
func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("%s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// Is reports ErrServiceFailure for every ServiceError.
func (e *ServiceError) Is(target error) bool {
	return target == ErrServiceFailure
}

// NewServiceError creates a new ServiceError.
func NewServiceError(operation, message string, err error) *ServiceError {
	return &ServiceError{Operation: operation, Message: message, Err: err}
}
