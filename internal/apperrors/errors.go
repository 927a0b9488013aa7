package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrInvalidRate indicates an attempt to store a non-positive exchange rate.
var ErrInvalidRate = errors.New("invalid exchange rate")

// ErrUnknownMethod indicates a payment method with no registered configuration.
var ErrUnknownMethod = errors.New("unknown payment method")

// ErrInvalidPayment indicates that at least one leg of a payment batch failed validation.
var ErrInvalidPayment = errors.New("invalid payment")

// ErrInsufficientPayment indicates that the payments do not cover the sale total.
var ErrInsufficientPayment = errors.New("insufficient payment")

// AppError carries a status code alongside an underlying error.
type AppError struct {
	Code    int
	Message string
	Err     error
}

// NewAppError creates a new AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewNotFoundError wraps ErrNotFound with a message.
func NewNotFoundError(message string) error {
	return fmt.Errorf("%w: %s", ErrNotFound, message)
}

// NewValidationError wraps ErrValidation with a message.
func NewValidationError(message string) error {
	return fmt.Errorf("%w: %s", ErrValidation, message)
}

// UnknownMethodError is returned when a payment method has no configuration.
type UnknownMethodError struct {
	Method string
}

func (e *UnknownMethodError) Error() string {
	return fmt.Sprintf("%s: %q", ErrUnknownMethod, e.Method)
}

func (e *UnknownMethodError) Is(target error) bool {
	return target == ErrUnknownMethod
}

// InvalidPaymentError names the leg of a batch that failed validation.
type InvalidPaymentError struct {
	Index  int
	Method string
	Reason string
}

func (e *InvalidPaymentError) Error() string {
	return fmt.Sprintf("%s: payment %d (%s) failed validation: %s", ErrInvalidPayment, e.Index, e.Method, e.Reason)
}

func (e *InvalidPaymentError) Is(target error) bool {
	return target == ErrInvalidPayment
}
