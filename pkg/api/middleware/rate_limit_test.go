package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sucrim/servicekit/pkg/api/middleware"
)

func TestRateLimiter(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(limiter *middleware.RateLimiter) *gin.Engine {
		router := gin.New()
		router.Use(limiter.RateLimit())
		router.GET("/test", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})
		return router
	}

	t.Run("allows requests within limit", func(t *testing.T) {
		limiter := middleware.NewRateLimiter(10, 10)
		defer limiter.Stop()
		router := newRouter(limiter)

		for i := 0; i < 5; i++ {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))
			assert.Equal(t, http.StatusOK, w.Code)
		}
	})

	t.Run("rate limits excessive requests", func(t *testing.T) {
		limiter := middleware.NewRateLimiter(0.001, 2)
		defer limiter.Stop()
		router := newRouter(limiter)

		for i := 0; i < 2; i++ {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))
			assert.Equal(t, http.StatusOK, w.Code)
		}

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))
		assert.Equal(t, http.StatusTooManyRequests, w.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, false, body["success"])
		assert.Nil(t, body["data"])
	})

	t.Run("stop is idempotent", func(t *testing.T) {
		limiter := middleware.NewRateLimiter(10, 10)
		assert.NotPanics(t, func() {
			limiter.Stop()
			limiter.Stop()
		})
	})
}
