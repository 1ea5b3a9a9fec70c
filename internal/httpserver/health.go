package httpserver

import (
	"net/http"

	"token-srv/pkg/errors"
	"token-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

const (
	serviceName    = "token-srv"
	serviceVersion = "1.0.0"
)

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the token service is healthy
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "Service is healthy"
// @Router /health [get]
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "healthy",
		"service": serviceName,
		"version": serviceVersion,
		"metrics": srv.metricsEnabled,
	})
}

// readyCheck handles readiness check requests
// @Summary Readiness Check
// @Description Check if the token service can sign tokens
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "Service is ready"
// @Failure 503 {object} response.Resp "Service is not ready"
// @Router /ready [get]
func (srv *HTTPServer) readyCheck(c *gin.Context) {
	if _, err := srv.jwtMgr.Create(serviceName, 0); err != nil {
		srv.logger.Errorf(c.Request.Context(), "httpserver.readyCheck.Create: %v", err)
		response.HttpError(c, errors.NewHTTPError(http.StatusServiceUnavailable, "AUTH503", "Service not ready"))
		return
	}

	response.OK(c, gin.H{
		"status":  "ready",
		"service": serviceName,
		"version": serviceVersion,
	})
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the token service is alive
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "Service is alive"
// @Router /live [get]
func (srv *HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"service": serviceName,
		"version": serviceVersion,
	})
}
