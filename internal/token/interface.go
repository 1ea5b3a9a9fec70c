package token

import (
	"context"

	"token-srv/pkg/jwt"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Issue mints a token for input.Subject ("user" when empty).
	Issue(ctx context.Context, input IssueInput) (IssueOutput, error)
	// Decode verifies the signature of input.Token but not its expiry.
	Decode(ctx context.Context, input DecodeInput) (ClaimsOutput, error)
	// Inspect shapes claims already verified by the access guard.
	Inspect(ctx context.Context, claims jwt.Claims) ClaimsOutput
}
