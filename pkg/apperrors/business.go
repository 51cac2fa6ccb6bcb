package apperrors

import (
	"fmt"
	"net/http"
)

// Default process names reported by the typed constructors.
const (
	ProcessBadRequest          = "Processing Client Request"
	ProcessUnauthorized        = "Authentication"
	ProcessForbidden           = "Authorization"
	ProcessNotFound            = "Resource Lookup"
	ProcessConflict            = "Resource Conflict"
	ProcessUnprocessableEntity = "Data Validation"
	ProcessInternal            = "Internal Server Error"
	ProcessServiceUnavailable  = "Service Availability"
)

// BusinessError is a domain failure that carries the HTTP status it should be reported with.
//
// Process names the operation that failed and Errors holds optional per-field
// details. Every typed constructor below returns a *BusinessError so callers can
// match on a single type with errors.As.
type BusinessError struct {
	Message    string
	Process    string
	StatusCode int
	Errors     []any
}

// Option customizes a BusinessError built by one of the typed constructors
type Option func(*BusinessError)

// WithProcess overrides the default process name
func WithProcess(process string) Option {
	return func(e *BusinessError) {
		e.Process = process
	}
}

// WithErrors attaches detailed error entries
func WithErrors(errs ...any) Option {
	return func(e *BusinessError) {
		e.Errors = append(e.Errors, errs...)
	}
}

// NewBusinessError creates a business error with an explicit status code.
// A zero status code defaults to 400.
func NewBusinessError(message, process string, statusCode int, errs ...any) *BusinessError {
	if statusCode == 0 {
		statusCode = http.StatusBadRequest
	}
	if errs == nil {
		errs = []any{}
	}
	return &BusinessError{
		Message:    message,
		Process:    process,
		StatusCode: statusCode,
		Errors:     errs,
	}
}

func (e *BusinessError) Error() string {
	return fmt.Sprintf("%s: %s", e.Process, e.Message)
}

// ToMap returns the error as a plain record for JSON bodies
func (e *BusinessError) ToMap() map[string]any {
	return map[string]any{
		"message": e.Message,
		"process": e.Process,
		"errors":  e.Errors,
	}
}

func build(message, process string, status int, opts []Option) *BusinessError {
	e := NewBusinessError(message, process, status)
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// BadRequest creates a 400 error
func BadRequest(message string, opts ...Option) *BusinessError {
	return build(message, ProcessBadRequest, http.StatusBadRequest, opts)
}

// Unauthorized creates a 401 error
func Unauthorized(message string, opts ...Option) *BusinessError {
	return build(message, ProcessUnauthorized, http.StatusUnauthorized, opts)
}

// Forbidden creates a 403 error
func Forbidden(message string, opts ...Option) *BusinessError {
	return build(message, ProcessForbidden, http.StatusForbidden, opts)
}

// NotFound creates a 404 error
func NotFound(message string, opts ...Option) *BusinessError {
	return build(message, ProcessNotFound, http.StatusNotFound, opts)
}

// Conflict creates a 409 error
func Conflict(message string, opts ...Option) *BusinessError {
	return build(message, ProcessConflict, http.StatusConflict, opts)
}

// UnprocessableEntity creates a 422 error
func UnprocessableEntity(message string, opts ...Option) *BusinessError {
	return build(message, ProcessUnprocessableEntity, http.StatusUnprocessableEntity, opts)
}

// Validation creates an input validation error. Unlike the other constructors
// the process is required; the status defaults to 422.
func Validation(message, process string, opts ...Option) *BusinessError {
	return build(message, process, http.StatusUnprocessableEntity, opts)
}

// InternalServer creates a 500 error
func InternalServer(message string, opts ...Option) *BusinessError {
	return build(message, ProcessInternal, http.StatusInternalServerError, opts)
}

// ServiceUnavailable creates a 503 error
func ServiceUnavailable(message string, opts ...Option) *BusinessError {
	return build(message, ProcessServiceUnavailable, http.StatusServiceUnavailable, opts)
}
