package usecase

import (
	"context"

	"helpdesk-srv/internal/chat"
	chatRepo "helpdesk-srv/internal/chat/repository"
	ticketRepo "helpdesk-srv/internal/ticket/repository"
	pkgLog "helpdesk-srv/pkg/log"
	pkgMinio "helpdesk-srv/pkg/minio"
)

type Options struct {
	// VerifyAttachments makes Send stat attachment references in storage.
	VerifyAttachments bool
}

type usecase struct {
	l        pkgLog.Logger
	tickets  ticketRepo.Repository
	messages chatRepo.Repository
	rooms    chat.Rooms
	notifier chat.Notifier
	storage  pkgMinio.MinIO
	opts     Options
	locks    *ticketLocks
	runAsync func(func())
}

var _ chat.UseCase = &usecase{}

// New builds the chat usecase. storage may be nil when attachments are not
// verified.
func New(
	l pkgLog.Logger,
	tickets ticketRepo.Repository,
	messages chatRepo.Repository,
	rooms chat.Rooms,
	notifier chat.Notifier,
	storage pkgMinio.MinIO,
	opts Options,
) chat.UseCase {
	return &usecase{
		l:        l,
		tickets:  tickets,
		messages: messages,
		rooms:    rooms,
		notifier: notifier,
		storage:  storage,
		opts:     opts,
		locks:    newTicketLocks(),
		runAsync: func(fn func()) { go fn() },
	}
}

func (uc *usecase) notify(ctx context.Context, fn func(ctx context.Context)) {
	ctx = context.WithoutCancel(ctx)
	uc.runAsync(func() {
		defer func() {
			if r := recover(); r != nil {
				uc.l.Errorf(ctx, "internal.chat.usecase.notify: panic: %v", r)
			}
		}()
		fn(ctx)
	})
}
