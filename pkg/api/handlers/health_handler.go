package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sucrim/servicekit/pkg/api/dto"
)

// HealthHandler reports service liveness
type HealthHandler struct {
	version string
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(version string) *HealthHandler {
	return &HealthHandler{version: version}
}

// Health handles GET /health
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, dto.Ok(dto.HealthResponse{
		Status:  "healthy",
		Version: h.version,
	}))
}
