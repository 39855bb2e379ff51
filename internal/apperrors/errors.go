package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrStorage indicates that the underlying store failed. Callers do not retry.
var ErrStorage = errors.New("storage error")

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")

// ErrConflict indicates the resource is not in a state that allows the operation.
var ErrConflict = errors.New("state conflict")

// ErrCurrencyNotFound indicates an unknown currency code or id.
var ErrCurrencyNotFound = NewNotFoundError("currency not found")

// ErrRateNotFound indicates no exchange rate exists for an ordered currency pair.
var ErrRateNotFound = NewNotFoundError("exchange rate not found")

// AppError carries an HTTP-ish status code alongside a message and the cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap exposes both the cause and the sentinel matching Code, so that
// errors.Is(err, ErrNotFound) holds for a 404 AppError.
func (e *AppError) Unwrap() []error {
	errs := make([]error, 0, 2)
	if sentinel := sentinelForCode(e.Code); sentinel != nil {
		errs = append(errs, sentinel)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

func sentinelForCode(code int) error {
	switch code {
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusBadRequest:
		return ErrValidation
	case http.StatusConflict:
		return ErrDuplicate
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusInternalServerError:
		return ErrStorage
	default:
		return nil
	}
}

// NewAppError builds an AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError builds a 404 AppError.
func NewNotFoundError(message string) *AppError {
	return NewAppError(http.StatusNotFound, message, nil)
}

// NewValidationError builds a 400 AppError.
func NewValidationError(message string) *AppError {
	return NewAppError(http.StatusBadRequest, message, nil)
}

// NewStorageError wraps a driver error as a 500 AppError.
func NewStorageError(message string, err error) *AppError {
	return NewAppError(http.StatusInternalServerError, message, err)
}

// StatusCode maps an error onto the HTTP status the handlers respond with.
func StatusCode(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicate), errors.Is(err, ErrConflict):
		return http.StatusConflict
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
