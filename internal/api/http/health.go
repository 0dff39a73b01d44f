package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopgraph/go-recs-backend/internal/storage/graph"
)

type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Service   string    `json:"service"`
	Version   string    `json:"version"`
	Graph     string    `json:"graph"`
}

// HealthHandler reports reachability of the graph store, the only backing
// service the API reads.
type HealthHandler struct {
	serviceName string
	version     string
	graph       graph.Pinger
}

func NewHealthHandler(serviceName, version string, pinger graph.Pinger) *HealthHandler {
	return &HealthHandler{
		serviceName: serviceName,
		version:     version,
		graph:       pinger,
	}
}

func (h *HealthHandler) HealthCheck(c *gin.Context) {
	graphStatus := "disabled"
	status := http.StatusOK
	if h.graph != nil {
		pingCtx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := h.graph.Ping(pingCtx); err != nil {
			graphStatus = "down"
			status = http.StatusServiceUnavailable
		} else {
			graphStatus = "up"
		}
	}

	c.JSON(status, HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
		Service:   h.serviceName,
		Version:   h.version,
		Graph:     graphStatus,
	})
}

func (h *HealthHandler) RegisterRoutes(r gin.IRouter) {
	r.GET("/health", h.HealthCheck)
	r.GET("/healthz", h.HealthCheck)
}
