package usecase

import (
	"context"
	"time"

	"token-srv/internal/token"
	"token-srv/pkg/jwt"
)

func (uc *implUseCase) Issue(ctx context.Context, input token.IssueInput) (token.IssueOutput, error) {
	subject := input.Subject
	if subject == "" {
		subject = token.DefaultSubject
	}
	if len(subject) > token.MaxSubjectLen {
		return token.IssueOutput{}, token.ErrSubjectTooLong
	}

	ttl := uc.jwtMgr.DefaultTTL()
	if input.LifetimeHours > 0 {
		ttl = time.Duration(input.LifetimeHours) * time.Hour
	}

	tokenString, err := uc.jwtMgr.Create(subject, ttl)
	if err != nil {
		uc.l.Errorf(ctx, "token.usecase.Issue.Create: %v", err)
		return token.IssueOutput{}, err
	}

	// Read the claims back so the output reflects exactly what was signed.
	claims, err := uc.jwtMgr.Verify(tokenString, false)
	if err != nil {
		uc.l.Errorf(ctx, "token.usecase.Issue.Verify: %v", err)
		return token.IssueOutput{}, err
	}

	uc.metrics.issued.Inc()
	uc.l.Infof(ctx, "Token issued | subject: %s | expires_at: %s", subject, claims.ExpiresAt.UTC().Format(time.RFC3339))

	return token.IssueOutput{
		Token:  tokenString,
		Claims: claims,
	}, nil
}

func (uc *implUseCase) Decode(ctx context.Context, input token.DecodeInput) (token.ClaimsOutput, error) {
	claims, err := uc.jwtMgr.Verify(input.Token, false)
	if err != nil {
		uc.metrics.observeVerification(modeDecode, resultInvalid)
		uc.l.Warnf(ctx, "token.usecase.Decode.Verify: %v", err)
		return token.ClaimsOutput{}, err
	}

	out := uc.toClaimsOutput(claims)
	if out.Expired {
		uc.metrics.observeVerification(modeDecode, resultExpired)
	} else {
		uc.metrics.observeVerification(modeDecode, resultValid)
	}
	return out, nil
}

func (uc *implUseCase) Inspect(ctx context.Context, claims jwt.Claims) token.ClaimsOutput {
	uc.metrics.observeVerification(modeAccess, resultValid)
	return uc.toClaimsOutput(claims)
}

func (uc *implUseCase) toClaimsOutput(claims jwt.Claims) token.ClaimsOutput {
	return token.ClaimsOutput{
		Subject:   claims.Subject,
		IssuedAt:  claims.IssuedAt,
		ExpiresAt: claims.ExpiresAt,
		Expired:   !uc.now().Before(claims.ExpiresAt),
	}
}
