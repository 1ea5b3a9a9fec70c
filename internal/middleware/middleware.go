package middleware

import (
	"strings"

	"token-srv/pkg/response"
	"token-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

const bearerScheme = "bearer"

// bearerToken extracts the credentials of an "Authorization: Bearer <x>"
// header. The scheme is matched case-insensitively.
func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	scheme, credentials, found := strings.Cut(strings.TrimSpace(authHeader), " ")
	if !found || !strings.EqualFold(scheme, bearerScheme) {
		return "", false
	}
	credentials = strings.TrimSpace(credentials)
	if credentials == "" {
		return "", false
	}
	return credentials, true
}

// MasterAuth guards routes that require the master credential.
// A missing header answers 403 "Not authenticated".
func (m Middleware) MasterAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		credential, ok := bearerToken(c)
		if !ok {
			m.l.Warnf(ctx, "Missing or malformed Authorization header | Path: %s", c.Request.URL.Path)
			response.HttpError(c, errNotAuthenticated)
			return
		}

		if err := m.gate.RequireMasterCredential(ctx, credential); err != nil {
			response.HttpError(c, errInvalidMasterToken)
			return
		}

		c.Request = c.Request.WithContext(scope.SetMasterToContext(ctx))
		c.Next()
	}
}

// Auth guards routes that require a valid, unexpired token and stores its
// claims in the request context.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		token, ok := bearerToken(c)
		if !ok {
			m.l.Warnf(ctx, "Missing or malformed Authorization header | Path: %s", c.Request.URL.Path)
			response.HttpError(c, errInvalidToken)
			return
		}

		claims, err := m.gate.RequireValidToken(ctx, token)
		if err != nil {
			response.HttpError(c, mapTokenError(err))
			return
		}

		c.Request = c.Request.WithContext(scope.SetClaimsToContext(ctx, claims))
		c.Next()
	}
}
