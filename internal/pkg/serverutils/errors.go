package serverutils

import (
	"net/http"
)

// AppError carries an HTTP status and a client-safe message.
type AppError struct {
	Code    int
	Message string
	Err     error // underlying cause, never sent to the client
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewAppError(code int, message string, cause error) *AppError {
	return &AppError{Code: code, Message: message, Err: cause}
}

func BadRequest(message string) *AppError {
	return NewAppError(http.StatusBadRequest, message, nil)
}

func Unauthorized(message string) *AppError {
	return NewAppError(http.StatusUnauthorized, message, nil)
}

// NotFound wraps cause so callers can still match the domain sentinel.
func NotFound(message string, cause error) *AppError {
	return NewAppError(http.StatusNotFound, message, cause)
}

func Internal(cause error) *AppError {
	return NewAppError(http.StatusInternalServerError, cause.Error(), cause)
}
