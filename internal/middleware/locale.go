package middleware

import (
	"token-srv/pkg/locale"

	"github.com/gin-gonic/gin"
)

// Locale reads the "lang" header and stores the parsed language in the
// request context. Unknown values fall back to the default language.
func (m Middleware) Locale() gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := locale.ParseLang(c.GetHeader(locale.HeaderName))

		ctx := locale.SetLocaleToContext(c.Request.Context(), lang)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
