package handlers_test

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/sucrim/servicekit/pkg/api/dto"
	"github.com/sucrim/servicekit/internal/testutil"
	"github.com/sucrim/servicekit/pkg/api/handlers"
	"github.com/sucrim/servicekit/pkg/apperrors"
	"github.com/sucrim/servicekit/pkg/dateutil"
)

func setupZoneRouter(t *testing.T, catalog handlers.ZoneCatalog) *gin.Engine {
	t.Helper()
	h := handlers.NewZoneHandler(catalog, testutil.FixedConverter(t, testutil.MexicoNoon), dto.DefaultPageSize, 50)

	router := testutil.NewRouter()
	router.GET("/api/v1/zones", h.ListZones)
	return router
}

func TestZoneHandler_ListZones(t *testing.T) {
	total := len(dateutil.CommonZones())

	t.Run("first page with defaults", func(t *testing.T) {
		router := setupZoneRouter(t, handlers.NewStaticZoneCatalog())

		w := get(router, "/api/v1/zones", nil)
		require.Equal(t, http.StatusOK, w.Code)

		resp := decode[dto.ApiResponse[[]dto.ZoneDTO]](t, w)
		data, ok := resp.Data()
		require.True(t, ok)
		assert.Len(t, data, dto.DefaultPageSize)
		assert.Equal(t, "UTC", data[0].Name)
		assert.Equal(t, "+00:00", data[0].UTCOffset)
		assert.Equal(t, "America/Mexico_City", data[1].Name)
		assert.Equal(t, "-06:00", data[1].UTCOffset)
		assert.Equal(t, -6*3600, data[1].OffsetSeconds)

		page, ok := resp.Pagination()
		require.True(t, ok)
		assert.Equal(t, 0, page.Page())
		elements, _ := page.TotalElements()
		assert.Equal(t, int64(total), elements)
		pages, _ := page.TotalPages()
		assert.Equal(t, (total+dto.DefaultPageSize-1)/dto.DefaultPageSize, pages)
	})

	t.Run("last partial page", func(t *testing.T) {
		router := setupZoneRouter(t, handlers.NewStaticZoneCatalog("UTC", "Europe/Madrid", "Asia/Tokyo"))

		w := get(router, "/api/v1/zones", url.Values{"page": {"1"}, "size": {"2"}})
		require.Equal(t, http.StatusOK, w.Code)

		resp := decode[dto.ApiResponse[[]dto.ZoneDTO]](t, w)
		data, _ := resp.Data()
		require.Len(t, data, 1)
		assert.Equal(t, "Asia/Tokyo", data[0].Name)
		assert.Equal(t, "JST", data[0].Abbreviation)
	})

	t.Run("page past the end is empty", func(t *testing.T) {
		router := setupZoneRouter(t, handlers.NewStaticZoneCatalog("UTC"))

		w := get(router, "/api/v1/zones", url.Values{"page": {"5"}})
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"data":[]`)
	})

	t.Run("size above maximum", func(t *testing.T) {
		router := setupZoneRouter(t, handlers.NewStaticZoneCatalog())

		w := get(router, "/api/v1/zones", url.Values{"size": {"75"}})
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("negative page", func(t *testing.T) {
		router := setupZoneRouter(t, handlers.NewStaticZoneCatalog())

		w := get(router, "/api/v1/zones", url.Values{"page": {"-1"}})
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("configured max above default bound", func(t *testing.T) {
		h := handlers.NewZoneHandler(handlers.NewStaticZoneCatalog(), testutil.FixedConverter(t, testutil.MexicoNoon), 10, 500)
		router := testutil.NewRouter()
		router.GET("/api/v1/zones", h.ListZones)

		w := get(router, "/api/v1/zones", url.Values{"size": {"200"}})
		require.Equal(t, http.StatusOK, w.Code)

		data, _ := decode[dto.ApiResponse[[]dto.ZoneDTO]](t, w).Data()
		assert.Len(t, data, total)
	})

	t.Run("huge page is a client error", func(t *testing.T) {
		router := setupZoneRouter(t, handlers.NewStaticZoneCatalog())

		w := get(router, "/api/v1/zones", url.Values{"page": {"1000000000000000000"}, "size": {"10"}})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("catalog failure", func(t *testing.T) {
		catalog := new(MockZoneCatalog)
		catalog.On("Count", mock.Anything).Return(int64(0), errors.New("catalog offline"))
		router := setupZoneRouter(t, catalog)

		w := get(router, "/api/v1/zones", nil)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, apperrors.ProcessInternal, decode[dto.ErrorResponse](t, w).Process)
		catalog.AssertExpectations(t)
	})

	t.Run("offset and limit passed to catalog", func(t *testing.T) {
		catalog := new(MockZoneCatalog)
		catalog.On("Count", mock.Anything).Return(int64(40), nil)
		catalog.On("List", mock.Anything, 20, 5).Return([]string{"Europe/London"}, nil)
		router := setupZoneRouter(t, catalog)

		w := get(router, "/api/v1/zones", url.Values{"page": {"4"}, "size": {"5"}})
		require.Equal(t, http.StatusOK, w.Code)

		page, _ := decode[dto.ApiResponse[[]dto.ZoneDTO]](t, w).Pagination()
		pages, _ := page.TotalPages()
		assert.Equal(t, 8, pages)
		catalog.AssertExpectations(t)
	})
}

func TestStaticZoneCatalog(t *testing.T) {
	catalog := handlers.NewStaticZoneCatalog("A", "B", "C")
	ctx := context.Background()

	n, err := catalog.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	names, err := catalog.List(ctx, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "C"}, names)

	_, err = catalog.List(ctx, -1, 10)
	assert.ErrorIs(t, err, apperrors.ErrInvalidArgument)

	_, err = catalog.List(ctx, 0, 0)
	assert.ErrorIs(t, err, apperrors.ErrInvalidArgument)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = catalog.List(cancelled, 0, 1)
	assert.ErrorIs(t, err, context.Canceled)
}
