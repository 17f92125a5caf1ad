package api

import (
	"strconv"
	"time"

	"github.com/PilarGuataquira/202214-BaseProject/internal/logger"
	"github.com/PilarGuataquira/202214-BaseProject/internal/metrics"
	"github.com/gin-gonic/gin"
)

// RequestLogger logs one line per request and records it in m when m is set.
func RequestLogger(log logger.Logger, m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := c.Writer.Status()
		elapsed := time.Since(start)

		if m != nil {
			m.HTTPRequests.WithLabelValues(c.Request.Method, route, strconv.Itoa(status)).Inc()
			m.HTTPDuration.WithLabelValues(c.Request.Method, route).Observe(elapsed.Seconds())
		}

		fields := []interface{}{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", status,
			"duration", elapsed,
		}
		if len(c.Errors) > 0 {
			log.Error("request failed", append(fields, "error", c.Errors.String())...)
			return
		}
		log.Info("request", fields...)
	}
}
