package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ReadinessChecker reports whether the service can serve data.
type ReadinessChecker interface {
	Loaded() bool
}

// HealthHandler serves the liveness and readiness probes.
type HealthHandler struct {
	feed ReadinessChecker
}

// NewHealthHandler constructs a HealthHandler.
func NewHealthHandler(feed ReadinessChecker) *HealthHandler {
	return &HealthHandler{feed: feed}
}

// Liveness serves GET /healthz. Always OK while the process runs.
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Readiness serves GET /readyz. Not ready until the first feed load succeeds.
func (h *HealthHandler) Readiness(c *gin.Context) {
	if h.feed == nil || !h.feed.Loaded() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "feed not loaded"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}
