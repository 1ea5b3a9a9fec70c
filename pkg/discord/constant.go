package discord

import "time"

const (
	defaultBaseURL = "https://discord.com/api/webhooks"

	// MaxMessageLength is Discord's limit for plain message content.
	MaxMessageLength = 2000

	DefaultTimeout    = 10 * time.Second
	DefaultRetryCount = 2
	DefaultRetryDelay = time.Second
	DefaultUsername   = "token-srv"
)
