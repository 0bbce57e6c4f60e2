package middleware

import (
	"strconv"

	"calmfix/metrics"

	"github.com/gin-gonic/gin"
)

// MetricsMiddleware counts requests by route template, so ids do not blow up label cardinality.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.IncHTTPRequest(c.Request.Method, route, strconv.Itoa(c.Writer.Status()))
	}
}
