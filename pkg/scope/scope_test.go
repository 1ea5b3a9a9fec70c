package scope

import (
	"context"
	"testing"
	"time"

	"token-srv/pkg/jwt"
)

func TestClaimsContext(t *testing.T) {
	ctx := context.Background()
	if _, ok := GetClaimsFromContext(ctx); ok {
		t.Fatal("empty context must not carry claims")
	}
	if _, ok := GetSubjectFromContext(ctx); ok {
		t.Fatal("empty context must not carry a subject")
	}

	now := time.Unix(1700000000, 0).UTC()
	ctx = SetClaimsToContext(ctx, jwt.Claims{Subject: "alice", IssuedAt: now, ExpiresAt: now.Add(time.Hour)})

	claims, ok := GetClaimsFromContext(ctx)
	if !ok || claims.Subject != "alice" || !claims.IssuedAt.Equal(now) {
		t.Errorf("unexpected claims: %+v, %v", claims, ok)
	}
	if sub, _ := GetSubjectFromContext(ctx); sub != "alice" {
		t.Errorf("subject = %q, want alice", sub)
	}
}

func TestMasterContext(t *testing.T) {
	ctx := context.Background()
	if IsMasterFromContext(ctx) {
		t.Fatal("empty context must not be master")
	}
	if !IsMasterFromContext(SetMasterToContext(ctx)) {
		t.Error("expected master flag")
	}
}
