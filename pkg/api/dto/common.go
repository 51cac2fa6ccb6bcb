package dto

import "github.com/sucrim/servicekit/pkg/apperrors"

// ErrorResponse represents the body written for a failed request
type ErrorResponse struct {
	Message string `json:"message"`
	Process string `json:"process"`
	Errors  []any  `json:"errors"`
}

// NewErrorResponse builds the body for a business error
func NewErrorResponse(err *apperrors.BusinessError) ErrorResponse {
	return ErrorResponse{
		Message: err.Message,
		Process: err.Process,
		Errors:  err.Errors,
	}
}

// HealthResponse represents the health check payload
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// FieldError describes a single rejected request field
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
