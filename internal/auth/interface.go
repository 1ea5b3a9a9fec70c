package auth

import (
	"context"
	"crypto/sha256"

	"token-srv/pkg/jwt"
	"token-srv/pkg/log"
)

// Gate guards the token routes. It holds no mutable state.
type Gate interface {
	// RequireMasterCredential returns nil only when credential equals the
	// configured master token exactly.
	RequireMasterCredential(ctx context.Context, credential string) error
	// RequireValidToken verifies token with expiry enforced.
	RequireValidToken(ctx context.Context, token string) (jwt.Claims, error)
}

// New creates a Gate backed by jwtMgr.
func New(logger log.Logger, jwtMgr jwt.Manager, cfg Config) (Gate, error) {
	if cfg.MasterToken == "" {
		return nil, ErrEmptyMasterToken
	}
	return &gateImpl{
		masterDigest: sha256.Sum256([]byte(cfg.MasterToken)),
		jwtMgr:       jwtMgr,
		secLogger:    NewSecurityLogger(logger),
	}, nil
}

// NewSecurityLogger creates a new SecurityLogger
func NewSecurityLogger(logger log.Logger) *SecurityLogger {
	return &SecurityLogger{
		logger: logger,
	}
}
