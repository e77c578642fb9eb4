package usecase

import (
	"time"

	"helpdesk-srv/internal/notification"
	notifRepo "helpdesk-srv/internal/notification/repository"
	ticketRepo "helpdesk-srv/internal/ticket/repository"
	pkgLog "helpdesk-srv/pkg/log"
)

type Config struct {
	SnippetLength int
	PushTimeout   time.Duration
}

type usecase struct {
	l        pkgLog.Logger
	repo     notifRepo.Repository
	tickets  ticketRepo.Repository
	presence notification.Presence
	pusher   notification.Pusher
	cfg      Config
}

var _ notification.UseCase = &usecase{}

// New builds the dispatcher. pusher may be nil, in which case notifications
// are only stored.
func New(
	l pkgLog.Logger,
	repo notifRepo.Repository,
	tickets ticketRepo.Repository,
	presence notification.Presence,
	pusher notification.Pusher,
	cfg Config,
) notification.UseCase {
	if cfg.SnippetLength <= 0 {
		cfg.SnippetLength = notification.DefaultSnippetLength
	}
	if cfg.PushTimeout <= 0 {
		cfg.PushTimeout = 3 * time.Second
	}
	return &usecase{
		l:        l,
		repo:     repo,
		tickets:  tickets,
		presence: presence,
		pusher:   pusher,
		cfg:      cfg,
	}
}
