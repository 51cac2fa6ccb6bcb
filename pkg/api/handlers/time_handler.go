package handlers

import (
	"net/http"
	"time"

	"cloud.google.com/go/civil"
	"github.com/gin-gonic/gin"
	"github.com/sucrim/servicekit/pkg/api/dto"
	"github.com/sucrim/servicekit/pkg/api/middleware"
	"github.com/sucrim/servicekit/pkg/apperrors"
	"github.com/sucrim/servicekit/pkg/dateutil"
)

// ProcessConversion is the process reported for failed conversions
const ProcessConversion = "time_conversion"

// TimeHandler exposes the fixed-zone converter over HTTP
type TimeHandler struct {
	converter *dateutil.Converter
}

// NewTimeHandler creates a new time handler
func NewTimeHandler(converter *dateutil.Converter) *TimeHandler {
	return &TimeHandler{converter: converter}
}

// Now handles GET /api/v1/time/now
// @Summary Current time
// @Description Current instant and civil date in the fixed zone
// @Tags time
// @Produce json
// @Success 200 {object} dto.TimeResponse
// @Router /api/v1/time/now [get]
func (h *TimeHandler) Now(c *gin.Context) {
	now := h.converter.Now()

	resp := dto.Ok(dto.TimeResponse{
		Zone:  h.converter.Location().String(),
		Now:   now,
		Today: civil.DateOf(now),
		UTC:   now.UTC(),
	})
	c.JSON(http.StatusOK, resp.WithTimestamp(now))
}

// ToFixed handles GET /api/v1/time/fixed
// @Summary Convert into the fixed zone
// @Description Naive values are read as UTC
// @Tags time
// @Produce json
// @Param datetime query string true "RFC 3339 or naive date-time"
// @Success 200 {object} dto.ConvertResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /api/v1/time/fixed [get]
func (h *TimeHandler) ToFixed(c *gin.Context) {
	var q dto.ConvertQuery
	if !middleware.BindQuery(c, &q, ProcessConversion) {
		return
	}

	t, dt, naive, err := parseDateTime(q.DateTime)
	if err != nil {
		middleware.AbortWithError(c, err)
		return
	}

	var fixed time.Time
	if naive {
		fixed = h.converter.ToFixedZoneCivil(dt)
	} else {
		fixed = h.converter.ToFixedZone(t)
	}

	resp := dto.Ok(dto.ConvertResponse{
		Input:     q.DateTime,
		Naive:     naive,
		Fixed:     fixed,
		Converted: fixed,
		Zone:      h.converter.Location().String(),
	})
	c.JSON(http.StatusOK, resp.WithTimestamp(h.converter.Now()))
}

// FromFixed handles GET /api/v1/time/convert
// @Summary Convert out of the fixed zone
// @Description Naive values are read as fixed-zone wall time. The target defaults to UTC.
// @Tags time
// @Produce json
// @Param datetime query string true "RFC 3339 or naive date-time"
// @Param to query string false "Target IANA zone"
// @Success 200 {object} dto.ConvertResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /api/v1/time/convert [get]
func (h *TimeHandler) FromFixed(c *gin.Context) {
	var q dto.ConvertQuery
	if !middleware.BindQuery(c, &q, ProcessConversion) {
		return
	}

	target := time.UTC
	if q.To != "" {
		loc, err := dateutil.LoadZone(q.To)
		if err != nil {
			middleware.AbortWithError(c, conversionError(err))
			return
		}
		target = loc
	}

	t, dt, naive, err := parseDateTime(q.DateTime)
	if err != nil {
		middleware.AbortWithError(c, err)
		return
	}

	var converted time.Time
	if naive {
		converted, err = h.converter.FromFixedZoneCivil(dt, target)
	} else {
		converted, err = h.converter.FromFixedZone(t, target)
	}
	if err != nil {
		middleware.AbortWithError(c, conversionError(err))
		return
	}

	resp := dto.Ok(dto.ConvertResponse{
		Input:     q.DateTime,
		Naive:     naive,
		Fixed:     h.converter.ToFixedZone(converted),
		Converted: converted,
		Zone:      target.String(),
	})
	c.JSON(http.StatusOK, resp.WithTimestamp(h.converter.Now()))
}

// parseDateTime accepts RFC 3339 values with an offset first, then naive
// civil date-times.
func parseDateTime(s string) (time.Time, civil.DateTime, bool, error) {
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, civil.DateTime{}, false, nil
	}

	dt, err := civil.ParseDateTime(s)
	if err != nil {
		return time.Time{}, civil.DateTime{}, false, apperrors.BadRequest(
			"datetime must be RFC 3339 or YYYY-MM-DDTHH:MM:SS",
			apperrors.WithProcess(ProcessConversion),
		)
	}
	return time.Time{}, dt, true, nil
}

func conversionError(err error) error {
	return apperrors.BadRequest(err.Error(), apperrors.WithProcess(ProcessConversion))
}
