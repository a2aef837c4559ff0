package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/limaJavier/teambalance/pkg/model"
)

// HealthHandler handles health check endpoints
type HealthHandler struct {
	balancer model.Balancer
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(balancer model.Balancer) *HealthHandler {
	return &HealthHandler{balancer: balancer}
}

// GetHealth returns the basic health status
func (h *HealthHandler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, HealthStatus{
		Status:      "ok",
		Service:     "team-balance",
		Timestamp:   time.Now(),
		CachedModes: h.balancer.CachedModes(),
	})
}
