package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/studiopay/studio-pay-api/internal/service"
)

// Metrics records duration and status for every request. The route
// template is used as the path label so ids do not explode cardinality.
func Metrics(metricsSvc *service.MetricsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if metricsSvc == nil {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metricsSvc.ObserveHTTPRequest(c.Request.Method, route, c.Writer.Status(), time.Since(start))
	}
}
