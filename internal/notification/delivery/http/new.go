package http

import (
	"helpdesk-srv/internal/notification"
	"helpdesk-srv/pkg/discord"
	"helpdesk-srv/pkg/log"
)

type Handler struct {
	l       log.Logger
	uc      notification.UseCase
	discord discord.IDiscord
}

func New(l log.Logger, uc notification.UseCase, d discord.IDiscord) *Handler {
	return &Handler{
		l:       l,
		uc:      uc,
		discord: d,
	}
}
