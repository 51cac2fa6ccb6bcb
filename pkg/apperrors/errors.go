package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrInvalidArgument is returned when a constructor or conversion receives input it cannot accept
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrZoneMismatch is returned when a value is expected in one zone but carries another.
	// It matches ErrInvalidArgument.
	ErrZoneMismatch = fmt.Errorf("%w: zone mismatch", ErrInvalidArgument)

	// ErrNonexistentTime is returned for wall-clock times skipped by a DST transition.
	// It matches ErrInvalidArgument.
	ErrNonexistentTime = fmt.Errorf("%w: nonexistent local time", ErrInvalidArgument)
)

// StatusOf maps an error to the HTTP status a transport layer should use for it
func StatusOf(err error) int {
	var be *BusinessError
	switch {
	case err == nil:
		return http.StatusOK
	case errors.As(err, &be):
		return be.StatusCode
	case errors.Is(err, ErrInvalidArgument):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
