package usecase

import (
	"context"
	"errors"

	"helpdesk-srv/internal/model"
	"helpdesk-srv/internal/notification"
	notifRepo "helpdesk-srv/internal/notification/repository"
	ticketRepo "helpdesk-srv/internal/ticket/repository"
)

func (uc *usecase) OnAssignment(ctx context.Context, t model.Ticket, assigneeID string) (model.Notification, error) {
	if assigneeID == "" {
		return model.Notification{}, notification.ErrTicketNotAssigned
	}

	n, err := uc.create(ctx, notifRepo.CreateOptions{
		TicketID: t.ID,
		Kind:     model.NotificationKindAssignment,
		Message:  notification.AssignmentMessage(t.ID, t.Title),
		TargetID: assigneeID,
	})
	if err != nil {
		return model.Notification{}, err
	}

	uc.push(ctx, n)
	return n, nil
}

func (uc *usecase) NotifyAssignment(ctx context.Context, input notification.AssignmentInput) (model.Notification, error) {
	if input.TicketID <= 0 {
		return model.Notification{}, notification.ErrInvalidRequest
	}

	t, err := uc.tickets.Detail(ctx, input.TicketID)
	if err != nil {
		if errors.Is(err, ticketRepo.ErrNotFound) {
			return model.Notification{}, notification.ErrTicketNotFound
		}
		uc.l.Errorf(ctx, "internal.notification.usecase.NotifyAssignment.Detail: %v", err)
		return model.Notification{}, err
	}

	assignee := input.AssigneeID
	if assignee == "" {
		assignee = t.AssigneeID
	}
	return uc.OnAssignment(ctx, t, assignee)
}

// OnChatMessage runs after the message is persisted and broadcast. A
// participant that leaves between the broadcast and the presence snapshot
// saw the message live and is still notified; that over-notification is
// accepted. One that joins in the same window counts as present and is not.
func (uc *usecase) OnChatMessage(ctx context.Context, t model.Ticket, senderID, body string) error {
	candidates := recipients(t, senderID)
	if len(candidates) == 0 {
		return nil
	}

	present := uc.presence.PresentSubjects(t.RoomName())
	msg := notification.ChatMessage(t.ID, notification.Snippet(body, uc.cfg.SnippetLength))

	var errs []error
	for _, sub := range candidates {
		if _, ok := present[sub]; ok {
			continue
		}
		n, err := uc.create(ctx, notifRepo.CreateOptions{
			TicketID: t.ID,
			Kind:     model.NotificationKindChat,
			Message:  msg,
			TargetID: sub,
		})
		if err != nil {
			errs = append(errs, err)
			continue
		}
		uc.push(ctx, n)
	}
	return errors.Join(errs...)
}
