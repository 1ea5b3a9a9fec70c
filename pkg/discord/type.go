package discord

import (
	"net/http"
	"time"

	"token-srv/pkg/log"
)

// Webhook contains webhook information for Discord API.
type Webhook struct {
	ID    string
	Token string
}

// Config holds delivery settings.
type Config struct {
	BaseURL    string
	Timeout    time.Duration
	RetryCount int
	RetryDelay time.Duration
	Username   string
}

// WebhookPayload is the body posted to the webhook.
type WebhookPayload struct {
	Content  string `json:"content"`
	Username string `json:"username,omitempty"`
}

// Discord is the Discord service implementation for sending webhook messages.
type Discord struct {
	l       log.Logger
	webhook Webhook
	config  Config
	client  *http.Client
}
