package http

import (
	"helpdesk-srv/internal/chat"
	"helpdesk-srv/pkg/discord"
	"helpdesk-srv/pkg/log"
)

type Handler struct {
	l       log.Logger
	uc      chat.UseCase
	discord discord.IDiscord
}

func New(l log.Logger, uc chat.UseCase, d discord.IDiscord) *Handler {
	return &Handler{
		l:       l,
		uc:      uc,
		discord: d,
	}
}
