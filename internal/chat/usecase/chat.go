package usecase

import (
	"context"
	"strings"

	"helpdesk-srv/internal/chat"
	chatRepo "helpdesk-srv/internal/chat/repository"
	"helpdesk-srv/internal/model"
)

func (uc *usecase) Join(ctx context.Context, sc model.Scope, connID string, ticketID int64) (chat.JoinOutput, error) {
	t, err := uc.getTicket(ctx, ticketID)
	if err != nil {
		return chat.JoinOutput{}, err
	}
	if err := chat.CanAccess(sc, t); err != nil {
		return chat.JoinOutput{}, err
	}

	room := t.RoomName()
	unlock := uc.locks.lock(t.ID)
	defer unlock()

	if err := uc.rooms.Join(connID, room); err != nil {
		return chat.JoinOutput{}, chat.ErrConnectionClosed
	}

	msgs, err := uc.messages.ListByTicket(ctx, t.ID)
	if err != nil {
		uc.l.Errorf(ctx, "internal.chat.usecase.Join.ListByTicket: %v", err)
		uc.rooms.Leave(connID, room)
		return chat.JoinOutput{}, err
	}

	return chat.JoinOutput{TicketID: t.ID, Messages: msgs}, nil
}

func (uc *usecase) Send(ctx context.Context, sc model.Scope, connID string, input chat.SendInput) (model.ChatMessage, error) {
	input.Body = strings.TrimSpace(input.Body)
	input.AttachmentRef = strings.TrimSpace(input.AttachmentRef)
	if input.Body == "" && input.AttachmentRef == "" {
		return model.ChatMessage{}, chat.ErrInvalidRequest
	}

	t, err := uc.getTicket(ctx, input.TicketID)
	if err != nil {
		return model.ChatMessage{}, err
	}
	room := t.RoomName()
	if !uc.rooms.InRoom(connID, room) {
		return model.ChatMessage{}, chat.ErrNotJoined
	}
	if err := uc.checkAttachment(ctx, input.AttachmentRef); err != nil {
		return model.ChatMessage{}, err
	}

	senderID := sc.SubjectID()
	msg, err := uc.persistAndBroadcast(ctx, t, connID, chatRepo.CreateOptions{
		TicketID:      t.ID,
		SenderID:      senderID,
		Body:          input.Body,
		AttachmentRef: input.AttachmentRef,
	})
	if err != nil {
		return model.ChatMessage{}, err
	}

	uc.notify(ctx, func(ctx context.Context) {
		if err := uc.notifier.OnChatMessage(ctx, t, senderID, msg.Body); err != nil {
			uc.l.Warnf(ctx, "internal.chat.usecase.Send.OnChatMessage: %v", err)
		}
	})

	return msg, nil
}

func (uc *usecase) persistAndBroadcast(ctx context.Context, t model.Ticket, connID string, opts chatRepo.CreateOptions) (model.ChatMessage, error) {
	unlock := uc.locks.lock(t.ID)
	defer unlock()

	msg, err := uc.messages.Create(ctx, opts)
	if err != nil {
		uc.l.Errorf(ctx, "internal.chat.usecase.Send.Create: %v", err)
		return model.ChatMessage{}, err
	}
	uc.rooms.Broadcast(t.RoomName(), chat.EventMessage, msg, connID)
	return msg, nil
}

func (uc *usecase) Leave(ctx context.Context, connID string, ticketID int64) {
	if ticketID <= 0 {
		return
	}
	uc.rooms.Leave(connID, model.TicketRoom(ticketID))
}

func (uc *usecase) History(ctx context.Context, sc model.Scope, ticketID int64) ([]model.ChatMessage, error) {
	t, err := uc.getTicket(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	if err := chat.CanAccess(sc, t); err != nil {
		return nil, err
	}

	msgs, err := uc.messages.ListByTicket(ctx, t.ID)
	if err != nil {
		uc.l.Errorf(ctx, "internal.chat.usecase.History.ListByTicket: %v", err)
		return nil, err
	}
	return msgs, nil
}
