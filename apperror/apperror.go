// Package apperror defines the error kinds shared by all services. Every
// failure is recovered at the component boundary and carried to the request
// layer as an *Error with the HTTP status it should be served with.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

const (
	KindValidation = "validation"
	KindAuth       = "auth"
	KindNotFound   = "not_found"
	KindForbidden  = "forbidden"
	KindConflict   = "conflict"
	KindStore      = "store"
	KindPayment    = "payment"
)

// Error is a service-level error with an HTTP status attached.
type Error struct {
	Kind    string
	Status  int
	Message string
	Err     error // underlying cause, surfaced in the details field
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Details returns the underlying error text for the response payload.
func (e *Error) Details() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return ""
}

// WithStatus overrides the default HTTP status for endpoints that report the
// same kind with a different code (e.g. forbidden actions served as 400).
func (e *Error) WithStatus(status int) *Error {
	e.Status = status
	return e
}

func Validation(message string) *Error {
	return &Error{Kind: KindValidation, Status: http.StatusBadRequest, Message: message}
}

func Auth(message string) *Error {
	return &Error{Kind: KindAuth, Status: http.StatusUnauthorized, Message: message}
}

func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Status: http.StatusNotFound, Message: message}
}

func Forbidden(message string) *Error {
	return &Error{Kind: KindForbidden, Status: http.StatusForbidden, Message: message}
}

func Conflict(message string) *Error {
	return &Error{Kind: KindConflict, Status: http.StatusBadRequest, Message: message}
}

func Store(message string, err error) *Error {
	return &Error{Kind: KindStore, Status: http.StatusInternalServerError, Message: message, Err: err}
}

func Payment(message string, err error) *Error {
	return &Error{Kind: KindPayment, Status: http.StatusInternalServerError, Message: message, Err: err}
}

// From converts any error into an *Error, wrapping unknown errors as a
// generic store failure with the given message.
func From(err error, message string) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return Store(message, err)
}
