package auth

import (
	"context"
	"crypto/sha256"
	"crypto/subtle"
	"errors"

	"token-srv/pkg/jwt"
)

// RequireMasterCredential compares SHA-256 digests in constant time so neither
// the content nor the length of the master token leaks through timing.
func (g *gateImpl) RequireMasterCredential(ctx context.Context, credential string) error {
	digest := sha256.Sum256([]byte(credential))
	if subtle.ConstantTimeCompare(digest[:], g.masterDigest[:]) != 1 {
		g.secLogger.LogMasterCredentialRejected(ctx, len(credential))
		return &AccessDeniedError{Reason: ReasonInvalidCredential}
	}
	return nil
}

func (g *gateImpl) RequireValidToken(ctx context.Context, token string) (jwt.Claims, error) {
	claims, err := g.jwtMgr.Verify(token, true)
	if err != nil {
		reason := ReasonInvalidToken
		if errors.Is(err, jwt.ErrExpiredToken) {
			reason = ReasonExpiredToken
		}
		g.secLogger.LogTokenRejected(ctx, reason, err)
		return jwt.Claims{}, &AccessDeniedError{Reason: reason, Err: err}
	}
	return claims, nil
}
