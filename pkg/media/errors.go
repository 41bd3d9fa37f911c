package media

import (
	"errors"
	"fmt"
	"net/http"
)

// Error kinds. Check them with errors.Is; a *ServiceError unwraps to its kind.
//
// Refer: https://docs.imagekit.io/api-reference/api-introduction#error-codes
var (
	ErrBadRequest       = errors.New("bad request")
	ErrUnauthorized     = errors.New("unauthorized")
	ErrForbidden        = errors.New("forbidden")
	ErrNotFound         = errors.New("not found")
	ErrTooManyRequests  = errors.New("too many requests")
	ErrInternalServer   = errors.New("internal server error")
	ErrUnexpectedStatus = errors.New("unexpected status")
	ErrTransport        = errors.New("transport error")
	ErrDecode           = errors.New("response decoding error")
	ErrInvalidUpload    = errors.New("invalid upload")
)

// ServiceError is a non-success response of the service.
type ServiceError struct {
	Kind       error
	StatusCode int
	Message    string
}

func (e *ServiceError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s (status %d)", e.Kind, e.StatusCode)
	}

	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *ServiceError) Unwrap() error { return e.Kind }

// KindFromStatus maps a response status code to its error kind.
func KindFromStatus(statusCode int) error {
	switch statusCode {
	case http.StatusBadRequest:
		return ErrBadRequest
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusForbidden:
		return ErrForbidden
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusTooManyRequests:
		return ErrTooManyRequests
	case http.StatusInternalServerError,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return ErrInternalServer
	default:
		return ErrUnexpectedStatus
	}
}

func NewServiceError(statusCode int, message string) *ServiceError {
	return &ServiceError{
		Kind:       KindFromStatus(statusCode),
		StatusCode: statusCode,
		Message:    message,
	}
}
