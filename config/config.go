package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v9"
	"github.com/joho/godotenv"
)

const minSecretKeyLen = 32

type Config struct {
	// Server Configuration
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Authentication & Security Configuration
	JWT    JWTConfig
	Master MasterConfig

	// Monitoring & Notification Configuration
	Discord DiscordConfig
	Metrics MetricsConfig
}

// HTTPServerConfig is the configuration for the HTTP server
type HTTPServerConfig struct {
	Host               string        `env:"HTTP_HOST" envDefault:"0.0.0.0"`
	Port               int           `env:"HTTP_PORT" envDefault:"8000"`
	Mode               string        `env:"HTTP_MODE" envDefault:"release"`
	BaseURL            string        `env:"BASE_URL" envDefault:"/api"`
	ShutdownTimeout    time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
	CORSAllowedOrigins []string      `env:"CORS_ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`
}

// LoggerConfig is the configuration for the logger
type LoggerConfig struct {
	Level        string `env:"LOGGER_LEVEL" envDefault:"info"`
	Mode         string `env:"LOGGER_MODE" envDefault:"production"`
	Encoding     string `env:"LOGGER_ENCODING" envDefault:"json"`
	ColorEnabled bool   `env:"LOGGER_COLOR_ENABLED" envDefault:"false"`

	// Rotating file sink. An empty Dir disables it.
	Dir        string `env:"LOG_DIR" envDefault:"./logs"`
	Filename   string `env:"LOG_FILENAME" envDefault:"app.log"`
	FileLevel  string `env:"LOG_FILE_LEVEL" envDefault:"debug"`
	MaxSizeMB  int    `env:"LOG_MAX_SIZE_MB" envDefault:"10"`
	MaxBackups int    `env:"LOG_MAX_BACKUPS" envDefault:"5"`
}

// FilePath returns the log file path, or "" when the file sink is off.
func (c LoggerConfig) FilePath() string {
	if c.Dir == "" {
		return ""
	}
	return filepath.Join(c.Dir, c.Filename)
}

// JWTConfig is the configuration for the JWT
type JWTConfig struct {
	SecretKey         string `env:"JWT_SECRET_KEY"`
	Algorithm         string `env:"JWT_ALGORITHM" envDefault:"HS256"`
	AccessExpireHours int    `env:"ACCESS_TOKEN_EXPIRE_HOURS" envDefault:"8760"`
}

// AccessTTL returns the default token lifetime.
func (c JWTConfig) AccessTTL() time.Duration {
	return time.Duration(c.AccessExpireHours) * time.Hour
}

// MasterConfig holds the credential required to mint and decode tokens.
type MasterConfig struct {
	Token string `env:"MASTER_TOKEN"`
}

// DiscordConfig is the configuration for Discord webhook notifications
type DiscordConfig struct {
	WebhookID    string `env:"DISCORD_WEBHOOK_ID"`
	WebhookToken string `env:"DISCORD_WEBHOOK_TOKEN"`
}

// Enabled reports whether both webhook parts are set.
func (c DiscordConfig) Enabled() bool {
	return c.WebhookID != "" && c.WebhookToken != ""
}

// MetricsConfig is the configuration for the Prometheus endpoint
type MetricsConfig struct {
	Enabled bool `env:"METRICS_ENABLED" envDefault:"true"`
}

// Load reads an optional .env file, then parses the environment.
// Variables already set in the process win over the file.
func Load() (*Config, error) {
	if err := loadDotEnv(".env"); err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config.Load.Parse: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func loadDotEnv(path string) error {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("config.loadDotEnv: %w", err)
	}
	return nil
}

func validate(cfg *Config) error {
	if cfg.JWT.SecretKey == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if len(cfg.JWT.SecretKey) < minSecretKeyLen {
		return fmt.Errorf("JWT_SECRET_KEY must be at least %d characters", minSecretKeyLen)
	}
	if !strings.HasPrefix(cfg.JWT.Algorithm, "HS") {
		return fmt.Errorf("JWT_ALGORITHM %q is not supported, use HS256, HS384 or HS512", cfg.JWT.Algorithm)
	}
	if cfg.JWT.AccessExpireHours <= 0 {
		return fmt.Errorf("ACCESS_TOKEN_EXPIRE_HOURS must be positive")
	}
	if cfg.Master.Token == "" {
		return fmt.Errorf("MASTER_TOKEN is required")
	}
	if cfg.HTTPServer.Port <= 0 || cfg.HTTPServer.Port > 65535 {
		return fmt.Errorf("HTTP_PORT %d is out of range", cfg.HTTPServer.Port)
	}
	switch cfg.HTTPServer.Mode {
	case "release", "debug", "test":
	default:
		return fmt.Errorf("HTTP_MODE %q is invalid", cfg.HTTPServer.Mode)
	}
	if cfg.HTTPServer.BaseURL != "" && !strings.HasPrefix(cfg.HTTPServer.BaseURL, "/") {
		return fmt.Errorf("BASE_URL must start with '/'")
	}
	return nil
}
