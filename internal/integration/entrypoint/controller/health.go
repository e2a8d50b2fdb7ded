// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthProbe reports whether a single dependency is reachable.
type HealthProbe func() bool

// HealthController reports API liveness plus the state of the two
// backing stores: postgres for the ledger, redis for reminder events.
type HealthController struct {
	dbProbe    HealthProbe
	redisProbe HealthProbe
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status    string `json:"status"`
	Database  string `json:"database"`
	Redis     string `json:"redis"`
	Timestamp string `json:"timestamp"`
}

// NewHealthController creates a new health controller instance.
func NewHealthController(dbProbe, redisProbe HealthProbe) *HealthController {
	return &HealthController{
		dbProbe:    dbProbe,
		redisProbe: redisProbe,
	}
}

// Check handles GET /health requests. The API reports "degraded" rather
// than an error status when a dependency is down, since the process
// itself is still serving.
func (h *HealthController) Check(c *gin.Context) {
	db := probeStatus(h.dbProbe)
	redis := probeStatus(h.redisProbe)

	status := "ok"
	if db != "connected" || redis != "connected" {
		status = "degraded"
	}

	c.JSON(http.StatusOK, HealthResponse{
		Status:    status,
		Database:  db,
		Redis:     redis,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

func probeStatus(probe HealthProbe) string {
	if probe != nil && probe() {
		return "connected"
	}
	return "disconnected"
}
