package token

import (
	"time"

	"token-srv/pkg/jwt"
)

const DefaultSubject = "user"

// IssueInput is the input of UseCase.Issue. LifetimeHours <= 0 selects the
// configured default lifetime.
type IssueInput struct {
	Subject       string
	LifetimeHours int
}

type IssueOutput struct {
	Token  string
	Claims jwt.Claims
}

type DecodeInput struct {
	Token string
}

type ClaimsOutput struct {
	Subject   string
	IssuedAt  time.Time
	ExpiresAt time.Time
	// Expired is informational; Decode never rejects on expiry.
	Expired bool
}
