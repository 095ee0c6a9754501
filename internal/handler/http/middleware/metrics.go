package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/smart-agroconnect/api/internal/infrastructure/metrics"
)

// Metrics records per-route request counts and latency.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.RequestsTotal.WithLabelValues(route, c.Request.Method, strconv.Itoa(c.Writer.Status())).Inc()
		metrics.RequestDuration.WithLabelValues(route, c.Request.Method).Observe(time.Since(start).Seconds())
	}
}
