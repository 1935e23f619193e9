package apperror

import (
	"errors"
	"net/http"
)

var (
	ErrNotFound     = errors.New("resource not found")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrBadRequest   = errors.New("bad request")
	ErrInternal     = errors.New("internal server error")
	ErrInvalidInput = errors.New("invalid input")

	ErrInvalidCredentials = errors.New("invalid email or password")

	// Domain errors
	ErrInvalidAction    = errors.New("invalid action type")
	ErrInvalidDate      = errors.New("invalid date format, use YYYY-MM-DD")
	ErrMissingBounds    = errors.New("both start_date and end_date are required")
	ErrMemberNotFound   = errors.New("member not found")
	ErrConcurrentUpdate = errors.New("member was modified concurrently")
)

// AppError is a custom error type that can hold an HTTP status code
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError
func New(code int, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// MapErrorToStatus maps common errors to HTTP status codes
func MapErrorToStatus(err error) int {
	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrMemberNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrUnauthorized) || errors.Is(err, ErrInvalidCredentials) {
		return http.StatusUnauthorized
	}
	if errors.Is(err, ErrForbidden) {
		return http.StatusForbidden
	}
	if errors.Is(err, ErrBadRequest) || errors.Is(err, ErrInvalidInput) ||
		errors.Is(err, ErrInvalidAction) || errors.Is(err, ErrInvalidDate) ||
		errors.Is(err, ErrMissingBounds) {
		return http.StatusBadRequest
	}
	if errors.Is(err, ErrConcurrentUpdate) {
		return http.StatusConflict
	}
	// Default to internal server error
	return http.StatusInternalServerError
}
