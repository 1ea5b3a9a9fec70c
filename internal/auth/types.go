package auth

import (
	"crypto/sha256"

	"token-srv/pkg/jwt"
	"token-srv/pkg/log"
)

// Reason tells which guard denied access.
type Reason string

const (
	ReasonInvalidCredential Reason = "invalid_credential"
	ReasonInvalidToken      Reason = "invalid_token"
	ReasonExpiredToken      Reason = "expired_token"
)

// AccessDeniedError is returned by every Gate check that fails.
type AccessDeniedError struct {
	Reason Reason
	Err    error
}

// Config holds the Gate configuration.
type Config struct {
	MasterToken string
}

type gateImpl struct {
	masterDigest [sha256.Size]byte
	jwtMgr       jwt.Manager
	secLogger    *SecurityLogger
}

// SecurityEventType represents the type of security event
type SecurityEventType string

const (
	SecurityEventMasterCredentialRejected SecurityEventType = "master_credential_rejected"
	SecurityEventTokenRejected            SecurityEventType = "token_rejected"
)

// SecurityLogger logs security-relevant events
type SecurityLogger struct {
	logger log.Logger
}
