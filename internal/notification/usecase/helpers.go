package usecase

import (
	"context"

	"helpdesk-srv/internal/model"
	"helpdesk-srv/internal/notification"
	notifRepo "helpdesk-srv/internal/notification/repository"
	"helpdesk-srv/pkg/metrics"
)

func (uc *usecase) create(ctx context.Context, opts notifRepo.CreateOptions) (model.Notification, error) {
	n, err := uc.repo.Create(ctx, opts)
	if err != nil {
		uc.l.Errorf(ctx, "internal.notification.usecase.create.Create: %v", err)
		return model.Notification{}, err
	}
	metrics.NotificationsCreated.WithLabelValues(n.Kind).Inc()
	return n, nil
}

// push never fails the caller: the stored row is the source of truth.
func (uc *usecase) push(ctx context.Context, n model.Notification) {
	if uc.pusher == nil {
		return
	}
	ctx, cancel := context.WithTimeout(ctx, uc.cfg.PushTimeout)
	defer cancel()

	if err := uc.pusher.Push(ctx, n.TargetID, n); err != nil {
		metrics.NotificationPushFailures.Inc()
		uc.l.Warnf(ctx, "internal.notification.usecase.push: notification %d to %s: %v", n.ID, n.TargetID, err)
	}
}

func subjectOf(sc model.Scope) (string, error) {
	if !sc.IsUser() {
		return "", notification.ErrForbidden
	}
	return sc.SubjectID(), nil
}

// recipients lists the ticket participants other than the sender, assignee
// first, without duplicates.
func recipients(t model.Ticket, senderID string) []string {
	var res []string
	for _, id := range []string{t.AssigneeID, t.CreatorID} {
		if id == "" || id == senderID {
			continue
		}
		if len(res) > 0 && res[0] == id {
			continue
		}
		res = append(res, id)
	}
	return res
}
