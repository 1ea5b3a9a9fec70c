package http

import (
	"token-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// Generate issues a token.
// @Summary Generate a token
// @Description Issues a signed token. Requires the master token as bearer credential.
// @Tags Token
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body generateReq false "Subject and lifetime in hours"
// @Success 200 {object} response.Resp{data=generateResp}
// @Failure 403 {object} response.Resp "Invalid master token"
// @Failure 422 {object} response.Resp "Validation error"
// @Failure 500 {object} response.Resp "Internal server error"
// @Router /v1/auth/token/generate [POST]
func (h *Handler) Generate(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processGenerateRequest(c)
	if err != nil {
		h.l.Warnf(ctx, "token.delivery.http.Generate.processGenerateRequest: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.Issue(ctx, req.toInput())
	if err != nil {
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newGenerateResp(o))
}

// Decode returns the claims of a token without enforcing its expiry.
// @Summary Decode a token
// @Description Verifies the signature of a token and returns its claims, even when expired. Requires the master token.
// @Tags Token
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body decodeReq true "Token to decode"
// @Success 200 {object} response.Resp{data=claimsResp}
// @Failure 400 {object} response.Resp "Token decode failed"
// @Failure 403 {object} response.Resp "Invalid master token"
// @Failure 422 {object} response.Resp "Validation error"
// @Router /v1/auth/token/decode [POST]
func (h *Handler) Decode(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processDecodeRequest(c)
	if err != nil {
		h.l.Warnf(ctx, "token.delivery.http.Decode.processDecodeRequest: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.Decode(ctx, req.toInput())
	if err != nil {
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newClaimsResp(o))
}

// Test echoes the claims of the bearer token.
// @Summary Test a token
// @Description Grants access when the bearer token is valid and not expired.
// @Tags Token
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Resp{data=testResp}
// @Failure 401 {object} response.Resp "Invalid token or token has expired"
// @Router /v1/auth/token/test [GET]
func (h *Handler) Test(c *gin.Context) {
	ctx := c.Request.Context()

	claims, err := h.processTestRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	response.OK(c, h.newTestResp(h.uc.Inspect(ctx, claims)))
}
