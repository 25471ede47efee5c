package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Ry3n-Huang/PawPal-Cloud-Computing-Project/internal/service"
)

// Metrics records request counts and latencies against the route template,
// so /users/:id stays one label regardless of the concrete ID.
func Metrics(metrics *service.MetricsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.ObserveHTTPRequest(c.Request.Method, route, c.Writer.Status(), time.Since(start))
	}
}
