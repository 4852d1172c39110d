package utils

import "fmt"

// Service-level error taxonomy. Controllers map these onto HTTP statuses
// through RespondServiceError instead of matching on message strings.

// NotFoundError means a referenced entity does not exist.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

func NotFoundf(format string, args ...interface{}) *NotFoundError {
	return &NotFoundError{Message: fmt.Sprintf(format, args...)}
}

// ValidationError means the input is malformed or out of range.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func Validationf(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// InvalidOperationError means the operation breaks a lifecycle rule:
// editing a submitted group, claiming an occupied seat, submitting an
// empty order, paying twice.
type InvalidOperationError struct {
	Message string
}

func (e *InvalidOperationError) Error() string { return e.Message }

func InvalidOperationf(format string, args ...interface{}) *InvalidOperationError {
	return &InvalidOperationError{Message: fmt.Sprintf(format, args...)}
}

// UnauthorizedError means authentication failed.
type UnauthorizedError struct {
	Message string
}

func (e *UnauthorizedError) Error() string { return e.Message }

func Unauthorizedf(format string, args ...interface{}) *UnauthorizedError {
	return &UnauthorizedError{Message: fmt.Sprintf(format, args...)}
}
