package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"token-srv/internal/token"
	"token-srv/pkg/jwt"
	"token-srv/pkg/log"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

var baseTime = time.Unix(1700000000, 0).UTC()

func newManager(t *testing.T, now time.Time) jwt.Manager {
	t.Helper()
	mgr, err := jwt.New(jwt.Config{
		SecretKey: testSecret,
		Now:       func() time.Time { return now },
	})
	require.NoError(t, err)
	return mgr
}

func newTestUseCase(t *testing.T) (*implUseCase, *prometheus.Registry) {
	t.Helper()
	reg := prometheus.NewRegistry()
	uc := New(log.NewNop(), newManager(t, baseTime), reg).(*implUseCase)
	uc.now = func() time.Time { return baseTime }
	return uc, reg
}

func TestIssue(t *testing.T) {
	tests := []struct {
		name        string
		input       token.IssueInput
		wantSubject string
		wantTTL     time.Duration
	}{
		{"defaults", token.IssueInput{}, token.DefaultSubject, jwt.DefaultTTL},
		{"custom subject", token.IssueInput{Subject: "alice"}, "alice", jwt.DefaultTTL},
		{"one hour", token.IssueInput{Subject: "bob", LifetimeHours: 1}, "bob", time.Hour},
		{"zero hours", token.IssueInput{LifetimeHours: 0}, token.DefaultSubject, jwt.DefaultTTL},
		{"negative hours", token.IssueInput{LifetimeHours: -5}, token.DefaultSubject, jwt.DefaultTTL},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, _ := newTestUseCase(t)
			out, err := uc.Issue(context.Background(), tt.input)
			require.NoError(t, err)

			assert.NotEmpty(t, out.Token)
			assert.Equal(t, tt.wantSubject, out.Claims.Subject)
			assert.True(t, out.Claims.IssuedAt.Equal(baseTime))
			assert.Equal(t, tt.wantTTL, out.Claims.Lifetime())

			decoded, err := uc.jwtMgr.Verify(out.Token, true)
			require.NoError(t, err)
			assert.Equal(t, out.Claims, decoded)
		})
	}
}

func TestIssue_SubjectTooLong(t *testing.T) {
	uc, _ := newTestUseCase(t)
	_, err := uc.Issue(context.Background(), token.IssueInput{Subject: strings.Repeat("a", token.MaxSubjectLen+1)})
	assert.ErrorIs(t, err, token.ErrSubjectTooLong)
	assert.Equal(t, 0.0, testutil.ToFloat64(uc.metrics.issued))
}

func TestIssue_CountsTokens(t *testing.T) {
	uc, reg := newTestUseCase(t)
	for i := 0; i < 3; i++ {
		_, err := uc.Issue(context.Background(), token.IssueInput{})
		require.NoError(t, err)
	}
	assert.Equal(t, 3.0, testutil.ToFloat64(uc.metrics.issued))

	n, err := testutil.GatherAndCount(reg, "token_srv_tokens_issued_total")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestDecode(t *testing.T) {
	uc, _ := newTestUseCase(t)
	ctx := context.Background()

	fresh, err := uc.Issue(ctx, token.IssueInput{Subject: "alice", LifetimeHours: 1})
	require.NoError(t, err)

	old := newManager(t, baseTime.Add(-48*time.Hour))
	expired, err := old.Create("bob", time.Hour)
	require.NoError(t, err)

	other, err := jwt.New(jwt.Config{SecretKey: strings.Repeat("z", 32), Now: func() time.Time { return baseTime }})
	require.NoError(t, err)
	foreign, err := other.Create("mallory", time.Hour)
	require.NoError(t, err)

	t.Run("fresh", func(t *testing.T) {
		out, err := uc.Decode(ctx, token.DecodeInput{Token: fresh.Token})
		require.NoError(t, err)
		assert.Equal(t, "alice", out.Subject)
		assert.False(t, out.Expired)
	})

	t.Run("expired is still decoded", func(t *testing.T) {
		out, err := uc.Decode(ctx, token.DecodeInput{Token: expired})
		require.NoError(t, err)
		assert.Equal(t, "bob", out.Subject)
		assert.True(t, out.Expired)
		assert.True(t, out.ExpiresAt.Equal(baseTime.Add(-47*time.Hour)))
	})

	t.Run("wrong secret", func(t *testing.T) {
		_, err := uc.Decode(ctx, token.DecodeInput{Token: foreign})
		assert.True(t, errors.Is(err, jwt.ErrInvalidToken))
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := uc.Decode(ctx, token.DecodeInput{Token: "abc"})
		assert.True(t, errors.Is(err, jwt.ErrInvalidToken))
	})

	assert.Equal(t, 1.0, testutil.ToFloat64(uc.metrics.verifications.WithLabelValues(modeDecode, resultValid)))
	assert.Equal(t, 1.0, testutil.ToFloat64(uc.metrics.verifications.WithLabelValues(modeDecode, resultExpired)))
	assert.Equal(t, 2.0, testutil.ToFloat64(uc.metrics.verifications.WithLabelValues(modeDecode, resultInvalid)))
}

func TestInspect(t *testing.T) {
	uc, _ := newTestUseCase(t)
	claims := jwt.Claims{Subject: "alice", IssuedAt: baseTime, ExpiresAt: baseTime.Add(time.Hour)}

	out := uc.Inspect(context.Background(), claims)
	assert.Equal(t, "alice", out.Subject)
	assert.True(t, out.IssuedAt.Equal(baseTime))
	assert.False(t, out.Expired)
	assert.Equal(t, 1.0, testutil.ToFloat64(uc.metrics.verifications.WithLabelValues(modeAccess, resultValid)))
}

func TestNew_NilRegistry(t *testing.T) {
	uc := New(log.NewNop(), newManager(t, baseTime), nil)
	_, err := uc.Issue(context.Background(), token.IssueInput{})
	assert.NoError(t, err)
}
