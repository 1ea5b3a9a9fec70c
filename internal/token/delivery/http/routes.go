package http

import (
	"token-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers the token routes under r.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	tokens := r.Group("/auth/token")
	{
		tokens.POST("/generate", mw.MasterAuth(), h.Generate)
		tokens.POST("/decode", mw.MasterAuth(), h.Decode)
		tokens.GET("/test", mw.Auth(), h.Test)
	}
}
