package errors

import (
	"errors"
	"net/http"
)

// Domain errors
var (
	ErrNotFound             = errors.New("resource not found")
	ErrInvalidInput         = errors.New("invalid input")
	ErrBadRequest           = errors.New("bad request")
	ErrUnauthorized         = errors.New("unauthorized")
	ErrForbidden            = errors.New("forbidden")
	ErrInvalidWalletAddress = errors.New("invalid wallet address")
	ErrUnsupportedPlatform  = errors.New("unsupported payment platform")
	ErrNoSalesData          = errors.New("no sales data available")
	ErrSalesDataUnavailable = errors.New("unable to load sales data")
	ErrNotEligible          = errors.New("merchant not eligible for loans")
	ErrLimitExceeded        = errors.New("requested amount exceeds loan limit")
	ErrAlreadyFunded        = errors.New("loan request already funded")
	ErrSelfFunding          = errors.New("borrower cannot fund own loan request")
	ErrContractUnavailable  = errors.New("loan contract unavailable")
)

// AppError represents an application error with HTTP status
type AppError struct {
	Status  int    `json:"-"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

// Unwrap exposes the wrapped sentinel for errors.Is checks
func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new app error
func NewAppError(status int, message string, err error) *AppError {
	return &AppError{
		Status:  status,
		Message: message,
		Err:     err,
	}
}

// Common error constructors
func NotFound(message string) *AppError {
	return NewAppError(http.StatusNotFound, message, ErrNotFound)
}

func BadRequest(message string) *AppError {
	return NewAppError(http.StatusBadRequest, message, ErrInvalidInput)
}

func Unauthorized(message string) *AppError {
	return NewAppError(http.StatusUnauthorized, message, ErrUnauthorized)
}

func Forbidden(message string) *AppError {
	return NewAppError(http.StatusForbidden, message, ErrForbidden)
}

func UnprocessableEntity(message string, err error) *AppError {
	return NewAppError(http.StatusUnprocessableEntity, message, err)
}

func ServiceUnavailable(message string, err error) *AppError {
	return NewAppError(http.StatusServiceUnavailable, message, err)
}

func InternalError(err error) *AppError {
	return NewAppError(http.StatusInternalServerError, "internal server error", err)
}
