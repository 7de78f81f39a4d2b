package errors

import (
	"fmt"
	"net/http"
)

// Sentinel errors for the expected, caller-recoverable failure classes.
// Repositories return these; services wrap them with a user-facing message.
var (
	ErrNotFound   = fmt.Errorf("record not found")
	ErrBadRequest = fmt.Errorf("bad request")
	ErrConflict   = fmt.Errorf("conflict")
)

// HttpError carries an HTTP status code together with the message that is
// safe to show to the caller. Err keeps the underlying cause for logging.
type HttpError struct {
	Code    int
	Message string
	Err     error
	Details map[string]interface{}
}

func (e *HttpError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *HttpError) Unwrap() error {
	return e.Err
}

func NewHttpError(code int, message string, err error, details map[string]interface{}) *HttpError {
	return &HttpError{Code: code, Message: message, Err: err, Details: details}
}

func NewNotFound(message string) *HttpError {
	return NewHttpError(http.StatusNotFound, message, ErrNotFound, nil)
}

func NewBadRequest(message string) *HttpError {
	return NewHttpError(http.StatusBadRequest, message, ErrBadRequest, nil)
}

func NewConflict(message string) *HttpError {
	return NewHttpError(http.StatusConflict, message, ErrConflict, nil)
}

func NewUnprocessable(message string, details map[string]interface{}) *HttpError {
	return NewHttpError(http.StatusUnprocessableEntity, message, ErrBadRequest, details)
}
