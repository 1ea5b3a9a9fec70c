package middleware

import (
	"runtime/debug"

	"token-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// Recovery turns a panic into the generic 500 envelope.
func (m Middleware) Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				ctx := c.Request.Context()
				m.l.Errorf(ctx, "Panic recovered: %v | Method: %s | Path: %s\n%s",
					err, c.Request.Method, c.Request.URL.Path, debug.Stack())

				response.PanicError(c, err, m.discord)
			}
		}()
		c.Next()
	}
}
