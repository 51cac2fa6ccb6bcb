package testutil

import (
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/sucrim/servicekit/pkg/api/middleware"
	"github.com/sucrim/servicekit/pkg/dateutil"
	"github.com/sucrim/servicekit/pkg/logging"
)

// MexicoNoon is 12:00 on 2024-01-15 in America/Mexico_City
var MexicoNoon = time.Date(2024, 1, 15, 18, 0, 0, 0, time.UTC)

// CivilDateTime builds a naive date-time to the minute
func CivilDateTime(y int, m time.Month, d, hh, mm int) civil.DateTime {
	return civil.DateTime{
		Date: civil.Date{Year: y, Month: m, Day: d},
		Time: civil.Time{Hour: hh, Minute: mm},
	}
}

// FixedConverter returns a converter whose clock is stopped at instant
func FixedConverter(t testing.TB, instant time.Time, opts ...dateutil.Option) *dateutil.Converter {
	t.Helper()
	opts = append([]dateutil.Option{dateutil.WithClock(dateutil.FixedClock(instant))}, opts...)
	c, err := dateutil.New(opts...)
	require.NoError(t, err)
	return c
}

// NewRouter returns a test-mode engine with request ids and error mapping installed
func NewRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.RequestID(), middleware.ErrorHandler(logging.Discard()))
	return router
}
