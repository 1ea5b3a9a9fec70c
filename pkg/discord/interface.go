package discord

import (
	"context"
	"errors"
	"net/http"
	"time"

	"token-srv/pkg/log"
)

// IDiscord reports server failures to a Discord channel.
type IDiscord interface {
	ReportBug(ctx context.Context, message string) error
	Close() error
}

// DefaultConfig returns the default delivery settings.
func DefaultConfig() Config {
	return Config{
		BaseURL:    defaultBaseURL,
		Timeout:    DefaultTimeout,
		RetryCount: DefaultRetryCount,
		RetryDelay: DefaultRetryDelay,
		Username:   DefaultUsername,
	}
}

// New creates a new Discord service instance with the provided logger and webhook.
func New(l log.Logger, webhook Webhook, cfg Config) (*Discord, error) {
	if webhook.ID == "" || webhook.Token == "" {
		return nil, errors.New("discord: webhook ID and token are required")
	}
	def := DefaultConfig()
	if cfg.BaseURL == "" {
		cfg.BaseURL = def.BaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = def.Timeout
	}
	if cfg.Username == "" {
		cfg.Username = def.Username
	}

	return &Discord{
		l:       l,
		webhook: webhook,
		config:  cfg,
		client: &http.Client{
			Timeout: cfg.Timeout,
			Transport: &http.Transport{
				MaxIdleConns:        10,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     30 * time.Second,
			},
		},
	}, nil
}
