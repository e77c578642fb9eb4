package middleware

import (
	"helpdesk-srv/internal/credential"
	"helpdesk-srv/pkg/discord"
	"helpdesk-srv/pkg/log"
)

type Middleware struct {
	l           log.Logger
	credentials credential.UseCase
	internalKey string
	discord     discord.IDiscord
}

func New(l log.Logger, credentials credential.UseCase, internalKey string, d discord.IDiscord) Middleware {
	return Middleware{
		l:           l,
		credentials: credentials,
		internalKey: internalKey,
		discord:     d,
	}
}
