package http

import (
	"token-srv/internal/token"
	"token-srv/pkg/response"
)

const accessGrantedMessage = "You have access!"

// --- Request DTOs ---

type generateReq struct {
	Subject       string `json:"subject" binding:"max=255"`
	LifetimeHours int    `json:"lifetime_hours" binding:"lte=876000"`
}

func (r generateReq) toInput() token.IssueInput {
	return token.IssueInput{
		Subject:       r.Subject,
		LifetimeHours: r.LifetimeHours,
	}
}

type decodeReq struct {
	Token string `json:"token" binding:"required"`
}

func (r decodeReq) toInput() token.DecodeInput {
	return token.DecodeInput{Token: r.Token}
}

// --- Response DTOs ---

type generateResp struct {
	Token string `json:"token"`
}

func (h *Handler) newGenerateResp(o token.IssueOutput) generateResp {
	return generateResp{Token: o.Token}
}

type claimsResp struct {
	Subject   string             `json:"subject"`
	IssuedAt  response.Timestamp `json:"issued_at" swaggertype:"string" format:"date-time"`
	ExpiresAt response.Timestamp `json:"expires_at" swaggertype:"string" format:"date-time"`
}

func (h *Handler) newClaimsResp(o token.ClaimsOutput) claimsResp {
	return claimsResp{
		Subject:   o.Subject,
		IssuedAt:  response.Timestamp(o.IssuedAt),
		ExpiresAt: response.Timestamp(o.ExpiresAt),
	}
}

type testResp struct {
	Message string `json:"message"`
	claimsResp
}

func (h *Handler) newTestResp(o token.ClaimsOutput) testResp {
	return testResp{
		Message:    accessGrantedMessage,
		claimsResp: h.newClaimsResp(o),
	}
}
