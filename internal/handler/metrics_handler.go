package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/Ry3n-Huang/PawPal-Cloud-Computing-Project/internal/service"
)

// MetricsHandler exposes the Prometheus scrape endpoint.
type MetricsHandler struct {
	metrics *service.MetricsService
}

// NewMetricsHandler constructs the metrics handler.
func NewMetricsHandler(metrics *service.MetricsService) *MetricsHandler {
	return &MetricsHandler{metrics: metrics}
}

// Handle serves the registry in Prometheus text format.
func (h *MetricsHandler) Handle(c *gin.Context) {
	gin.WrapH(h.metrics.Handler())(c)
}
