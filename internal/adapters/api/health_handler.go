package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"tripplanner.app/internal/ports"
)

// HealthResponse is returned by GET /api/health
type HealthResponse struct {
	Status     string                        `json:"status"`
	Timestamp  string                        `json:"timestamp"`
	Version    string                        `json:"version"`
	Components map[string]ports.HealthStatus `json:"components"`
}

// health handles GET /api/health; only an unhealthy component turns the response into a 503
func (s *HTTPServerAdapter) health(c *gin.Context) {
	results := s.healthChecker.CheckAll(c.Request.Context())
	status := ports.OverallStatus(results)

	code := http.StatusOK
	if status == "unhealthy" {
		code = http.StatusServiceUnavailable
	}

	c.JSON(code, HealthResponse{
		Status:     status,
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
		Version:    s.config.Version,
		Components: results,
	})
}
