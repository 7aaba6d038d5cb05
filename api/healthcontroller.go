package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthController reports liveness and which upstream the proxy targets.
// It never calls the upstream.
type HealthController struct {
	upstreamURL string
}

// NewHealthController creates a health controller for the given upstream.
func NewHealthController(upstreamURL string) *HealthController {
	return &HealthController{upstreamURL: upstreamURL}
}

// RegisterHealthRoutes registers health check endpoints.
func RegisterHealthRoutes(r *gin.Engine, hc *HealthController) {
	r.GET("/api/health", hc.GetHealth)
}

// GetHealth answers GET /api/health
func (hc *HealthController) GetHealth(c *gin.Context) {
	body := gin.H{"status": "ok"}
	if hc.upstreamURL != "" {
		body["upstream"] = hc.upstreamURL
	}
	c.JSON(http.StatusOK, body)
}
