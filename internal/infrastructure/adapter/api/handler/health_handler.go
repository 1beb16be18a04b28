package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/cheque-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/cheque-ledger/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/cheque-ledger/internal/infrastructure/adapter/database"
)

// DatabaseProbe is the part of the database manager the health check needs
type DatabaseProbe interface {
	Ping(ctx context.Context) error
	PoolMetrics() database.ConnectionPoolMetrics
	Driver() string
}

// HealthHandler reports liveness
type HealthHandler struct {
	probe  DatabaseProbe
	logger coreport.Logger
}

// NewHealthHandler creates a new health handler instance
func NewHealthHandler(probe DatabaseProbe, logger coreport.Logger) *HealthHandler {
	return &HealthHandler{
		probe:  probe,
		logger: logger,
	}
}

// Health handles GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	resp := dto.HealthResponse{
		Status:   "ok",
		Database: "up",
		Driver:   h.probe.Driver(),
		Pool:     h.probe.PoolMetrics(),
	}

	if err := h.probe.Ping(c.Request.Context()); err != nil {
		h.logger.Warn("Health check failed", map[string]any{
			"error": err.Error(),
		})
		resp.Status = "degraded"
		resp.Database = "down"
		c.JSON(http.StatusServiceUnavailable, resp)
		return
	}

	c.JSON(http.StatusOK, resp)
}
