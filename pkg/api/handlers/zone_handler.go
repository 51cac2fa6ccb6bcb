package handlers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sucrim/servicekit/pkg/api/dto"
	"github.com/sucrim/servicekit/pkg/api/middleware"
	"github.com/sucrim/servicekit/pkg/apperrors"
	"github.com/sucrim/servicekit/pkg/dateutil"
)

// ZoneCatalog lists the zones a client may convert into
type ZoneCatalog interface {
	Count(ctx context.Context) (int64, error)
	List(ctx context.Context, offset, limit int) ([]string, error)
}

type staticCatalog struct {
	names []string
}

// NewStaticZoneCatalog serves a fixed list of zone names. With no names it
// falls back to dateutil.CommonZones.
func NewStaticZoneCatalog(names ...string) ZoneCatalog {
	if len(names) == 0 {
		names = dateutil.CommonZones()
	}
	return &staticCatalog{names: names}
}

func (s *staticCatalog) Count(_ context.Context) (int64, error) {
	return int64(len(s.names)), nil
}

func (s *staticCatalog) List(ctx context.Context, offset, limit int) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if offset < 0 || limit <= 0 {
		return nil, fmt.Errorf("%w: offset %d limit %d", apperrors.ErrInvalidArgument, offset, limit)
	}
	if offset >= len(s.names) {
		return []string{}, nil
	}
	end := offset + limit
	if end > len(s.names) {
		end = len(s.names)
	}
	out := make([]string, end-offset)
	copy(out, s.names[offset:end])
	return out, nil
}

// ZoneHandler handles zone listing requests
type ZoneHandler struct {
	catalog     ZoneCatalog
	converter   *dateutil.Converter
	defaultSize int
	maxSize     int
}

// NewZoneHandler creates a new zone handler
func NewZoneHandler(catalog ZoneCatalog, converter *dateutil.Converter, defaultSize, maxSize int) *ZoneHandler {
	return &ZoneHandler{
		catalog:     catalog,
		converter:   converter,
		defaultSize: defaultSize,
		maxSize:     maxSize,
	}
}

// ListZones handles GET /api/v1/zones
// @Summary List zones
// @Description Paginated list of supported zones with their current offsets
// @Tags zones
// @Produce json
// @Param page query int false "Zero-based page number" default(0)
// @Param size query int false "Page size" default(10)
// @Success 200 {object} dto.ZoneDTO
// @Failure 422 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/v1/zones [get]
func (h *ZoneHandler) ListZones(c *gin.Context) {
	page, ok := middleware.BindPagination(c, h.defaultSize, h.maxSize)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	total, err := h.catalog.Count(ctx)
	if err != nil {
		middleware.AbortWithError(c, apperrors.InternalServer("Failed to count zones", apperrors.WithErrors(err.Error())))
		return
	}

	names, err := h.catalog.List(ctx, page.Offset(), page.Limit())
	if err != nil {
		middleware.AbortWithError(c, apperrors.InternalServer("Failed to list zones", apperrors.WithErrors(err.Error())))
		return
	}

	now := h.converter.Now()
	zones := make([]dto.ZoneDTO, 0, len(names))
	for _, name := range names {
		loc, err := dateutil.LoadZone(name)
		if err != nil {
			middleware.AbortWithError(c, err)
			return
		}
		zones = append(zones, dto.NewZoneDTO(loc, now))
	}

	resp, err := dto.OkFromPage(zones, page, total)
	if err != nil {
		middleware.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp.WithTimestamp(now))
}
