// Package api wires the example HTTP service around the dateutil converter
// and the response envelope.
package api

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/sucrim/servicekit/pkg/api/handlers"
	"github.com/sucrim/servicekit/pkg/api/middleware"
	"github.com/sucrim/servicekit/pkg/config"
	"github.com/sucrim/servicekit/pkg/dateutil"
)

// Server bundles the gin engine with the resources it owns
type Server struct {
	Engine  *gin.Engine
	limiter *middleware.RateLimiter
}

// NewServer builds the router with middleware and routes registered.
// A nil catalog serves dateutil.CommonZones.
func NewServer(cfg *config.Config, logger logrus.FieldLogger, converter *dateutil.Converter, catalog handlers.ZoneCatalog, version string) *Server {
	if catalog == nil {
		catalog = handlers.NewStaticZoneCatalog()
	}

	limiter := middleware.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)

	router := gin.New()
	router.Use(
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.ErrorHandler(logger),
	)

	health := handlers.NewHealthHandler(version)
	router.GET("/health", health.Health)

	timeHandler := handlers.NewTimeHandler(converter)
	zoneHandler := handlers.NewZoneHandler(catalog, converter, cfg.Pagination.DefaultSize, cfg.Pagination.MaxSize)

	v1 := router.Group("/api/v1")
	v1.Use(limiter.RateLimit())
	{
		v1.GET("/time/now", timeHandler.Now)
		v1.GET("/time/fixed", timeHandler.ToFixed)
		v1.GET("/time/convert", timeHandler.FromFixed)
		v1.GET("/zones", zoneHandler.ListZones)
	}

	return &Server{Engine: router, limiter: limiter}
}

// Close releases background resources
func (s *Server) Close() {
	s.limiter.Stop()
}
