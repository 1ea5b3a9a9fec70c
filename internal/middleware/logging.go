package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Logging writes one access log line per request. Errors attached with
// c.Error, such as the cause behind a 500, are logged here and never sent
// to the client.
func (m Middleware) Logging() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		ctx := c.Request.Context()
		status := c.Writer.Status()
		latency := time.Since(start)

		switch {
		case status >= http.StatusInternalServerError:
			m.l.Errorf(ctx, "%s %s | %d | %s | %s", c.Request.Method, path, status, latency, c.Errors.String())
		case status >= http.StatusBadRequest:
			m.l.Warnf(ctx, "%s %s | %d | %s", c.Request.Method, path, status, latency)
		default:
			m.l.Infof(ctx, "%s %s | %d | %s", c.Request.Method, path, status, latency)
		}
	}
}
