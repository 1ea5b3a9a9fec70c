package middleware

import (
	"token-srv/internal/auth"
	"token-srv/pkg/discord"
	"token-srv/pkg/log"
)

type Middleware struct {
	l       log.Logger
	gate    auth.Gate
	discord discord.IDiscord
}

// New creates the middleware set. discord may be nil.
func New(l log.Logger, gate auth.Gate, discord discord.IDiscord) Middleware {
	return Middleware{
		l:       l,
		gate:    gate,
		discord: discord,
	}
}
