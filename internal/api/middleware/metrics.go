package middleware

import (
	"Inkwell/internal/pkg/metrics"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// MetricsMiddleware 按路由模板统计请求数与耗时，未匹配的路由记为 unmatched
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		metrics.ActiveRequests.Inc()
		start := time.Now()

		c.Next()

		metrics.ActiveRequests.Dec()
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.HttpRequestsTotal.WithLabelValues(route, strconv.Itoa(c.Writer.Status())).Inc()
		metrics.HttpRequestDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
	}
}
