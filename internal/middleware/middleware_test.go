package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"token-srv/internal/auth"
	"token-srv/pkg/jwt"
	"token-srv/pkg/locale"
	"token-srv/pkg/log"
	"token-srv/pkg/scope"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

const (
	testSecret = "0123456789abcdef0123456789abcdef"
	testMaster = "master-credential"
)

type fixture struct {
	mw     Middleware
	jwtMgr jwt.Manager
	now    time.Time
	logs   *observer.ObservedLogs
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	core, logs := observer.New(zap.DebugLevel)
	l := log.NewFromCore(core)

	now := time.Unix(1700000000, 0)
	jwtMgr, err := jwt.New(jwt.Config{SecretKey: testSecret, Now: func() time.Time { return now }})
	require.NoError(t, err)
	gate, err := auth.New(l, jwtMgr, auth.Config{MasterToken: testMaster})
	require.NoError(t, err)

	return &fixture{mw: New(l, gate, nil), jwtMgr: jwtMgr, now: now, logs: logs}
}

func (f *fixture) router() *gin.Engine {
	r := gin.New()
	r.Use(f.mw.RequestID(), f.mw.Logging(), f.mw.Recovery(), f.mw.Locale())
	r.POST("/master", f.mw.MasterAuth(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"master": scope.IsMasterFromContext(c.Request.Context())})
	})
	r.GET("/token", f.mw.Auth(), func(c *gin.Context) {
		sub, _ := scope.GetSubjectFromContext(c.Request.Context())
		c.JSON(http.StatusOK, gin.H{"subject": sub})
	})
	r.GET("/panic", func(c *gin.Context) { panic("boom") })
	r.GET("/lang", func(c *gin.Context) {
		c.String(http.StatusOK, locale.GetLang(c.Request.Context()))
	})
	return r
}

func do(r http.Handler, method, path, authz string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if authz != "" {
		req.Header.Set("Authorization", authz)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestMasterAuth(t *testing.T) {
	f := newFixture(t)
	r := f.router()

	tests := []struct {
		name   string
		authz  string
		status int
		body   string
	}{
		{"valid", "Bearer " + testMaster, http.StatusOK, `"master":true`},
		{"lowercase scheme", "bearer " + testMaster, http.StatusOK, `"master":true`},
		{"missing header", "", http.StatusForbidden, "Not authenticated"},
		{"basic scheme", "Basic " + testMaster, http.StatusForbidden, "Not authenticated"},
		{"empty credential", "Bearer ", http.StatusForbidden, "Not authenticated"},
		{"wrong credential", "Bearer nope", http.StatusForbidden, "Invalid master token"},
		{"case variant", "Bearer MASTER-CREDENTIAL", http.StatusForbidden, "Invalid master token"},
		{"prefix", "Bearer " + testMaster[:6], http.StatusForbidden, "Invalid master token"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(r, http.MethodPost, "/master", tt.authz)
			assert.Equal(t, tt.status, w.Code)
			assert.Contains(t, w.Body.String(), tt.body)
			if tt.status == http.StatusForbidden {
				assert.Equal(t, "Bearer", w.Header().Get("WWW-Authenticate"))
				assert.Contains(t, w.Body.String(), auth.CodeInvalidMasterToken)
			}
		})
	}
}

func TestAuth(t *testing.T) {
	f := newFixture(t)
	r := f.router()

	fresh, err := f.jwtMgr.Create("alice", time.Hour)
	require.NoError(t, err)

	past := f.now.Add(-2 * time.Hour)
	oldMgr, err := jwt.New(jwt.Config{SecretKey: testSecret, Now: func() time.Time { return past }})
	require.NoError(t, err)
	expired, err := oldMgr.Create("bob", time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name   string
		authz  string
		status int
		code   string
	}{
		{"valid", "Bearer " + fresh, http.StatusOK, ""},
		{"missing header", "", http.StatusUnauthorized, auth.CodeInvalidToken},
		{"garbage", "Bearer not.a.jwt", http.StatusUnauthorized, auth.CodeInvalidToken},
		{"master as token", "Bearer " + testMaster, http.StatusUnauthorized, auth.CodeInvalidToken},
		{"expired", "Bearer " + expired, http.StatusUnauthorized, auth.CodeTokenExpired},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(r, http.MethodGet, "/token", tt.authz)
			assert.Equal(t, tt.status, w.Code)
			if tt.code != "" {
				assert.Contains(t, w.Body.String(), tt.code)
				assert.Equal(t, "Bearer", w.Header().Get("WWW-Authenticate"))
			} else {
				assert.Contains(t, w.Body.String(), `"subject":"alice"`)
			}
		})
	}
}

func TestRecovery(t *testing.T) {
	f := newFixture(t)
	w := do(f.router(), http.MethodGet, "/panic", "")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "AUTH500")
	assert.NotContains(t, w.Body.String(), "boom")
	assert.NotZero(t, f.logs.FilterMessageSnippet("Panic recovered: boom").Len())
}

func TestRequestID(t *testing.T) {
	f := newFixture(t)
	r := f.router()

	w := do(r, http.MethodGet, "/lang", "")
	generated := w.Header().Get(HeaderRequestID)
	assert.Len(t, generated, 36)

	req := httptest.NewRequest(http.MethodGet, "/lang", nil)
	req.Header.Set(HeaderRequestID, "abc-123")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get(HeaderRequestID))

	entries := f.logs.FilterField(zap.String("request_id", "abc-123")).All()
	assert.NotEmpty(t, entries)
}

func TestLocale(t *testing.T) {
	f := newFixture(t)
	r := f.router()

	req := httptest.NewRequest(http.MethodGet, "/lang", nil)
	req.Header.Set(locale.HeaderName, "vi")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, locale.VI, w.Body.String())

	w = do(r, http.MethodGet, "/lang", "")
	assert.Equal(t, locale.DefaultLang, w.Body.String())
}

func TestCORS(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("allow all preflight", func(t *testing.T) {
		r := gin.New()
		r.Use(CORS(DefaultCORSConfig(nil)))
		req := httptest.NewRequest(http.MethodOptions, "/x", nil)
		req.Header.Set("Origin", "https://a.test")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Contains(t, w.Header().Get("Access-Control-Allow-Headers"), "Authorization")
	})

	t.Run("listed origins", func(t *testing.T) {
		r := gin.New()
		r.Use(CORS(DefaultCORSConfig([]string{"https://ok.test", "*.corp.test"})))
		r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

		for origin, want := range map[string]string{
			"https://ok.test":       "https://ok.test",
			"https://api.corp.test": "https://api.corp.test",
			"https://evil.test":     "",
		} {
			req := httptest.NewRequest(http.MethodGet, "/x", nil)
			req.Header.Set("Origin", origin)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, want, w.Header().Get("Access-Control-Allow-Origin"), origin)
		}
	})
}

func TestBearerToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	for header, want := range map[string]string{
		"Bearer abc":   "abc",
		"BEARER  abc ": "abc",
		"Bearerabc":    "",
		"Token abc":    "",
		"":             "",
	} {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil).WithContext(context.Background())
		c.Request.Header.Set("Authorization", header)
		got, ok := bearerToken(c)
		assert.Equal(t, want, got, header)
		assert.Equal(t, want != "", ok, header)
	}
}
