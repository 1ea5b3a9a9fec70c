package http

import (
	"token-srv/internal/token"
	"token-srv/pkg/discord"
	"token-srv/pkg/log"
)

type Handler struct {
	l       log.Logger
	uc      token.UseCase
	discord discord.IDiscord
}

// New creates the token HTTP handler. discord may be nil.
func New(l log.Logger, uc token.UseCase, discord discord.IDiscord) *Handler {
	return &Handler{
		l:       l,
		uc:      uc,
		discord: discord,
	}
}
