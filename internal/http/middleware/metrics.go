// README: Metrics middleware records per-route request counts and latency.
package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"ridedeck/internal/metrics"
)

const metricsPath = "/metrics"

func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.URL.Path == metricsPath {
			c.Next()
			return
		}

		start := time.Now()
		metrics.HttpRequestsInFlight.Inc()
		defer metrics.HttpRequestsInFlight.Dec()

		c.Next()

		metrics.RecordHTTP(c.Request.Method, c.FullPath(), c.Writer.Status(), time.Since(start))
	}
}
