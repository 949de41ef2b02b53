package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"spendwise/internal/logger"
)

// HealthHandler reports whether the service can reach its database.
type HealthHandler struct {
	ping func() error
}

// NewHealthHandler creates a new HealthHandler. ping is called on every
// health check.
func NewHealthHandler(ping func() error) *HealthHandler {
	return &HealthHandler{ping: ping}
}

// Health reports service liveness
// @Summary     Health check
// @Tags        health
// @Produce     json
// @Success     200 {object} map[string]string "ok"
// @Failure     503 {object} map[string]string "database unreachable"
// @Router      /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	if err := h.ping(); err != nil {
		logger.Get().Errorw("health check failed", "error", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
