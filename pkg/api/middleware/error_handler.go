package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/sucrim/servicekit/pkg/api/dto"
	"github.com/sucrim/servicekit/pkg/apperrors"
)

// Process names reported for errors that are not business errors
const (
	ProcessGeneral  = "general_error"
	ProcessInternal = "internal_error"
)

const unexpectedErrorMessage = "An unexpected error occurred"

// ErrorHandler is a middleware that turns panics and errors attached with
// c.Error into ErrorResponse bodies
func ErrorHandler(logger logrus.FieldLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.WithFields(logrus.Fields{
					"panic":      rec,
					"path":       c.Request.URL.Path,
					"request_id": c.GetString(RequestIDKey),
				}).Error("recovered from panic")

				c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{
					Message: unexpectedErrorMessage,
					Process: ProcessInternal,
				})
			}
		}()

		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		status, body := ResponseFor(err)
		if status >= http.StatusInternalServerError {
			logger.WithError(err).WithField("request_id", c.GetString(RequestIDKey)).Error("request failed")
		}
		c.JSON(status, body)
	}
}

// ResponseFor maps an error to its status code and body
func ResponseFor(err error) (int, dto.ErrorResponse) {
	var be *apperrors.BusinessError
	switch {
	case errors.As(err, &be):
		return be.StatusCode, dto.NewErrorResponse(be)
	case errors.Is(err, apperrors.ErrInvalidArgument):
		return http.StatusBadRequest, dto.ErrorResponse{
			Message: err.Error(),
			Process: ProcessGeneral,
		}
	default:
		return http.StatusInternalServerError, dto.ErrorResponse{
			Message: unexpectedErrorMessage,
			Process: ProcessInternal,
		}
	}
}

// AbortWithError records err on the context and stops the handler chain.
// ErrorHandler writes the response.
func AbortWithError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}
