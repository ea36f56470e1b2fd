package handler

import (
	"net/http"
	"time"

	"github.com/appsmart/backend/internal/infrastructure/logger"
	"github.com/appsmart/backend/internal/infrastructure/persistence"
	"github.com/appsmart/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DatabaseChecker reports database reachability and pool usage
type DatabaseChecker interface {
	Ping() error
	Stats() (persistence.ConnectionStats, error)
}

// HealthHandler serves the liveness endpoint
type HealthHandler struct {
	db DatabaseChecker
}

// NewHealthHandler creates a new HealthHandler
func NewHealthHandler(db DatabaseChecker) *HealthHandler {
	return &HealthHandler{db: db}
}

// Check godoc
// @ID           healthCheck
// @Summary      Health check
// @Description  Reports service and database health with connection pool statistics
// @Tags         system
// @Produce      json
// @Success      200 {object} dto.HealthResponse
// @Failure      503 {object} dto.HealthResponse
// @Router       /health [get]
func (h *HealthHandler) Check(c *gin.Context) {
	log := logger.L(c.Request.Context())
	resp := dto.HealthResponse{
		Status:   "healthy",
		Time:     time.Now().Format(time.RFC3339),
		Database: "ok",
	}

	status := http.StatusOK
	if err := h.db.Ping(); err != nil {
		log.Warn("Health check failed", zap.Error(err))
		resp.Status = "unhealthy"
		resp.Database = "error"
		status = http.StatusServiceUnavailable
	}

	stats, err := h.db.Stats()
	if err != nil {
		log.Warn("Connection pool stats unavailable", zap.Error(err))
	} else {
		resp.Pool = &dto.PoolStats{
			MaxOpenConnections: stats.MaxOpenConnections,
			OpenConnections:    stats.OpenConnections,
			InUse:              stats.InUse,
			Idle:               stats.Idle,
			WaitCount:          stats.WaitCount,
			WaitDurationMs:     stats.WaitDuration.Milliseconds(),
		}
	}

	c.JSON(status, resp)
}
