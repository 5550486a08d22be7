package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/workforce-analytics-backend/internal/platform/ctxutil"
	"github.com/yungbote/workforce-analytics-backend/internal/platform/logger"
)

// AccessLog writes one line per request. Requests to quiet paths such as
// the healthcheck and metrics scrape are logged at debug unless they fail.
func AccessLog(log *logger.Logger, quiet ...string) gin.HandlerFunc {
	if log == nil {
		return func(c *gin.Context) { c.Next() }
	}
	log = log.With("component", "access")
	skip := make(map[string]struct{}, len(quiet))
	for _, p := range quiet {
		if p != "" {
			skip[p] = struct{}{}
		}
	}

	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		fields := []interface{}{
			"method", c.Request.Method,
			"route", route,
			"path", c.Request.URL.Path,
			"status", status,
			"bytes", c.Writer.Size(),
			"latency_ms", time.Since(start).Milliseconds(),
		}
		if q := c.Request.URL.RawQuery; q != "" {
			fields = append(fields, "query", q)
		}
		if errs := c.Errors.String(); errs != "" {
			fields = append(fields, "errors", errs)
		}
		fields = append(fields, ctxutil.LogFields(c.Request.Context())...)

		_, isQuiet := skip[c.Request.URL.Path]
		switch {
		case status >= 500:
			log.Error("request failed", fields...)
		case status >= 400:
			log.Warn("request rejected", fields...)
		case isQuiet:
			log.Debug("request", fields...)
		default:
			log.Info("request", fields...)
		}
	}
}
