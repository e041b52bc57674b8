package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lohum/schemetrack/internal/infrastructure/monitoring/logging"
	"github.com/lohum/schemetrack/internal/infrastructure/monitoring/metrics"
)

// Logging logs each request after it completes and records the request
// metrics. m may be nil.
func Logging(logger logging.Logger, m *metrics.Metrics) gin.HandlerFunc {
	logger = logger.Named("http")
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		elapsed := time.Since(start)

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := c.Writer.Status()

		if m != nil {
			m.HTTPRequest(c.Request.Method, route, status, elapsed)
		}

		fields := []logging.Field{
			logging.String("request_id", GetRequestID(c)),
			logging.String("method", c.Request.Method),
			logging.String("path", c.Request.URL.Path),
			logging.Int("status", status),
			logging.Duration("elapsed", elapsed),
		}
		if status >= 500 {
			logger.Error("request failed", fields...)
		} else {
			logger.Info("request served", fields...)
		}
	}
}
