package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("JWT_SECRET_KEY", testSecret)
	t.Setenv("MASTER_TOKEN", "master")
}

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())
	setRequired(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.HTTPServer.Host)
	assert.Equal(t, 8000, cfg.HTTPServer.Port)
	assert.Equal(t, "/api", cfg.HTTPServer.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.HTTPServer.ShutdownTimeout)
	assert.Equal(t, []string{"*"}, cfg.HTTPServer.CORSAllowedOrigins)
	assert.Equal(t, "HS256", cfg.JWT.Algorithm)
	assert.Equal(t, 8760*time.Hour, cfg.JWT.AccessTTL())
	assert.Equal(t, filepath.Join("logs", "app.log"), filepath.Clean(cfg.Logger.FilePath()))
	assert.Equal(t, 10, cfg.Logger.MaxSizeMB)
	assert.Equal(t, 5, cfg.Logger.MaxBackups)
	assert.True(t, cfg.Metrics.Enabled)
	assert.False(t, cfg.Discord.Enabled())
}

func TestLoad_DotEnvFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	content := "JWT_SECRET_KEY=" + testSecret + "\nMASTER_TOKEN=from-file\nHTTP_PORT=9000\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(content), 0o600))
	// process env wins over the file
	t.Setenv("HTTP_PORT", "9100")
	t.Cleanup(func() {
		os.Unsetenv("JWT_SECRET_KEY")
		os.Unsetenv("MASTER_TOKEN")
	})

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "from-file", cfg.Master.Token)
	assert.Equal(t, 9100, cfg.HTTPServer.Port)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"missing secret", map[string]string{"JWT_SECRET_KEY": ""}},
		{"short secret", map[string]string{"JWT_SECRET_KEY": "short"}},
		{"missing master", map[string]string{"MASTER_TOKEN": ""}},
		{"rsa algorithm", map[string]string{"JWT_ALGORITHM": "RS256"}},
		{"zero lifetime", map[string]string{"ACCESS_TOKEN_EXPIRE_HOURS": "0"}},
		{"bad port", map[string]string{"HTTP_PORT": "70000"}},
		{"bad mode", map[string]string{"HTTP_MODE": "prod"}},
		{"relative base url", map[string]string{"BASE_URL": "api"}},
		{"unparsable timeout", map[string]string{"SHUTDOWN_TIMEOUT": "soon"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Chdir(t.TempDir())
			setRequired(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			assert.Error(t, err)
		})
	}
}
