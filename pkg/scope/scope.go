package scope

import (
	"context"

	"token-srv/pkg/jwt"
)

type ClaimsCtxKey struct{}
type MasterCtxKey struct{}

// SetClaimsToContext stores claims verified by the token guard.
func SetClaimsToContext(ctx context.Context, claims jwt.Claims) context.Context {
	return context.WithValue(ctx, ClaimsCtxKey{}, claims)
}

// GetClaimsFromContext gets the claims from context
func GetClaimsFromContext(ctx context.Context) (jwt.Claims, bool) {
	claims, ok := ctx.Value(ClaimsCtxKey{}).(jwt.Claims)
	return claims, ok
}

// GetSubjectFromContext gets the subject from context
func GetSubjectFromContext(ctx context.Context) (string, bool) {
	claims, ok := GetClaimsFromContext(ctx)
	if !ok {
		return "", false
	}
	return claims.Subject, true
}

// SetMasterToContext marks the request as authorized by the master credential.
func SetMasterToContext(ctx context.Context) context.Context {
	return context.WithValue(ctx, MasterCtxKey{}, true)
}

// IsMasterFromContext reports whether the master guard let the request through.
func IsMasterFromContext(ctx context.Context) bool {
	ok, _ := ctx.Value(MasterCtxKey{}).(bool)
	return ok
}
