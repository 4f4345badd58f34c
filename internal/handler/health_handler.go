package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"blog-publisher/internal/infrastructure/database"
	"blog-publisher/internal/metrics"
)

// HealthHandler handles health check requests.
type HealthHandler struct {
	db *pgxpool.Pool
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(db *pgxpool.Pool) *HealthHandler {
	return &HealthHandler{db: db}
}

// HealthResponse represents the response for health check endpoints.
type HealthResponse struct {
	Status   string            `json:"status"`
	Version  string            `json:"version,omitempty"`
	Services map[string]string `json:"services,omitempty"`
}

// Health handles GET /health - comprehensive health check.
func (h *HealthHandler) Health(c *gin.Context) {
	ctx := c.Request.Context()
	services := map[string]string{
		"database": "healthy",
		"schema":   "healthy",
	}

	if err := database.HealthCheck(ctx, h.db); err != nil {
		services["database"] = "unhealthy"
		services["schema"] = "unknown"
		c.JSON(http.StatusServiceUnavailable, HealthResponse{
			Status:   "unhealthy",
			Services: services,
		})
		return
	}

	metrics.LogHealthCheckMetrics(ctx, h.db)

	status := "healthy"
	if missing, err := database.CheckTables(ctx, h.db); err != nil || len(missing) > 0 {
		services["schema"] = "unhealthy"
		status = "degraded"
	}

	c.JSON(http.StatusOK, HealthResponse{
		Status:   status,
		Version:  "1.0.0",
		Services: services,
	})
}

// Ready handles GET /ready - readiness probe for Kubernetes.
// The service is not ready until both tables exist.
func (h *HealthHandler) Ready(c *gin.Context) {
	missing, err := database.CheckTables(c.Request.Context(), h.db)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready"})
		return
	}
	if len(missing) > 0 {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready", "missing_tables": missing})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}

// Live handles GET /live - liveness probe for Kubernetes.
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "alive"})
}
