package usecase

import (
	"context"
	"errors"

	"helpdesk-srv/internal/chat"
	"helpdesk-srv/internal/model"
	ticketRepo "helpdesk-srv/internal/ticket/repository"
	pkgMinio "helpdesk-srv/pkg/minio"
)

func (uc *usecase) getTicket(ctx context.Context, id int64) (model.Ticket, error) {
	if id <= 0 {
		return model.Ticket{}, chat.ErrInvalidRequest
	}
	t, err := uc.tickets.Detail(ctx, id)
	if err != nil {
		if errors.Is(err, ticketRepo.ErrNotFound) {
			return model.Ticket{}, chat.ErrTicketNotFound
		}
		uc.l.Errorf(ctx, "internal.chat.usecase.getTicket.Detail: %v", err)
		return model.Ticket{}, err
	}
	return t, nil
}

func (uc *usecase) checkAttachment(ctx context.Context, ref string) error {
	if ref == "" || !uc.opts.VerifyAttachments || uc.storage == nil {
		return nil
	}
	if _, err := uc.storage.StatObject(ctx, ref); err != nil {
		if errors.Is(err, pkgMinio.ErrObjectNotFound) || errors.Is(err, pkgMinio.ErrInvalidRef) {
			return chat.ErrAttachmentNotFound
		}
		uc.l.Errorf(ctx, "internal.chat.usecase.checkAttachment.StatObject: %v", err)
		return err
	}
	return nil
}
