package errors

import (
	"errors"
	"fmt"
)

// ErrorType classifies an AppError for the HTTP layer.
type ErrorType string

const (
	ErrorTypeNotFound         ErrorType = "not_found"
	ErrorTypeValidation       ErrorType = "validation"
	ErrorTypeUnauthorized     ErrorType = "unauthorized"
	ErrorTypeRateLimited      ErrorType = "rate_limited"
	ErrorTypeMethodNotAllowed ErrorType = "method_not_allowed"
	ErrorTypeExternal         ErrorType = "external"
	ErrorTypeInternal         ErrorType = "internal"
)

type AppError struct {
	Type    ErrorType
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return e.Message + ": " + e.Err.Error()
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func newError(t ErrorType, message string) error {
	return &AppError{Type: t, Message: message}
}

func wrap(t ErrorType, message string, err error) error {
	return &AppError{Type: t, Message: message, Err: err}
}

func NotFoundf(format string, args ...any) error {
	return newError(ErrorTypeNotFound, fmt.Sprintf(format, args...))
}

func Validation(message string) error {
	return newError(ErrorTypeValidation, message)
}

func Validationf(format string, args ...any) error {
	return newError(ErrorTypeValidation, fmt.Sprintf(format, args...))
}

func WrapValidation(message string, err error) error {
	return wrap(ErrorTypeValidation, message, err)
}

func Unauthorized(message string) error {
	return newError(ErrorTypeUnauthorized, message)
}

func RateLimited(message string) error {
	return newError(ErrorTypeRateLimited, message)
}

func MethodNotAllowed(method string) error {
	return newError(ErrorTypeMethodNotAllowed, fmt.Sprintf("method %s not allowed", method))
}

// WrapExternal marks a failure of Postgres, Redis or another backing service.
func WrapExternal(message string, err error) error {
	return wrap(ErrorTypeExternal, message, err)
}

func WrapInternal(message string, err error) error {
	return wrap(ErrorTypeInternal, message, err)
}

// GetType reports ErrorTypeInternal for anything that is not an AppError.
func GetType(err error) ErrorType {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type
	}
	return ErrorTypeInternal
}
