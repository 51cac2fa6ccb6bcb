package middleware

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sucrim/servicekit/pkg/api/dto"
	"github.com/sucrim/servicekit/pkg/apperrors"
	"github.com/sucrim/servicekit/pkg/dateutil"
)

// ProcessPagination is the process reported for rejected page parameters
const ProcessPagination = "pagination"

var validate *validator.Validate

func init() {
	validate = validator.New()

	// Register custom validators
	_ = validate.RegisterValidation("iana_zone", validateTimezone)
}

// validateTimezone accepts empty strings and loadable IANA zone names
func validateTimezone(fl validator.FieldLevel) bool {
	name := fl.Field().String()
	if name == "" {
		return true
	}
	_, err := dateutil.LoadZone(name)
	return err == nil
}

// ValidateRequest validates a request struct
func ValidateRequest(obj interface{}) error {
	return validate.Struct(obj)
}

// ValidationErrors converts validator errors to field error entries
func ValidationErrors(err error) []any {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return []any{dto.FieldError{Field: "request", Message: err.Error()}}
	}

	out := make([]any, 0, len(validationErrors))
	for _, fieldError := range validationErrors {
		field := fieldError.Field()

		var message string
		switch fieldError.Tag() {
		case "required":
			message = fmt.Sprintf("%s is required", field)
		case "min":
			message = fmt.Sprintf("%s must be at least %s", field, fieldError.Param())
		case "max":
			message = fmt.Sprintf("%s must be at most %s", field, fieldError.Param())
		case "iana_zone":
			message = fmt.Sprintf("%s must be a valid IANA time zone", field)
		default:
			message = fmt.Sprintf("%s failed validation: %s", field, fieldError.Tag())
		}

		out = append(out, dto.FieldError{Field: field, Message: message})
	}
	return out
}

// BindQuery binds query parameters into obj and validates it. On failure it
// aborts with a 422 business error and returns false.
func BindQuery(c *gin.Context, obj interface{}, process string) bool {
	if err := c.ShouldBindQuery(obj); err != nil {
		AbortWithError(c, apperrors.BadRequest(err.Error(), apperrors.WithProcess(process)))
		return false
	}

	if err := ValidateRequest(obj); err != nil {
		AbortWithError(c, apperrors.Validation("Request validation failed", process,
			apperrors.WithErrors(ValidationErrors(err)...)))
		return false
	}

	return true
}

// BindPagination reads page and size query parameters. Missing size uses
// defaultSize; sizes above maxSize (dto.MaxPageSize when maxSize <= 0) are rejected.
func BindPagination(c *gin.Context, defaultSize, maxSize int) (dto.Pagination, bool) {
	if maxSize <= 0 {
		maxSize = dto.MaxPageSize
	}

	req := dto.NewPageRequest(defaultSize)
	if !BindQuery(c, &req, ProcessPagination) {
		return dto.Pagination{}, false
	}

	if req.Size > maxSize {
		AbortWithError(c, apperrors.Validation("Request validation failed", ProcessPagination,
			apperrors.WithErrors(dto.FieldError{
				Field:   "Size",
				Message: fmt.Sprintf("Size must be at most %d", maxSize),
			})))
		return dto.Pagination{}, false
	}

	p, err := req.ToPagination()
	if err != nil {
		AbortWithError(c, err)
		return dto.Pagination{}, false
	}
	return p, true
}
