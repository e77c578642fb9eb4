package usecase

import (
	"context"
	"errors"

	"helpdesk-srv/internal/model"
	"helpdesk-srv/internal/notification"
	notifRepo "helpdesk-srv/internal/notification/repository"
)

func (uc *usecase) List(ctx context.Context, sc model.Scope, input notification.ListInput) (notification.ListOutput, error) {
	sub, err := subjectOf(sc)
	if err != nil {
		return notification.ListOutput{}, err
	}

	f := notifRepo.Filter{TargetID: sub}
	if input.UnreadOnly {
		f.State = model.NotificationStateUnread
	}

	ns, pag, err := uc.repo.Get(ctx, notifRepo.GetOptions{
		Filter:        f,
		PaginateQuery: input.PaginateQuery,
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.notification.usecase.List.Get: %v", err)
		return notification.ListOutput{}, err
	}

	return notification.ListOutput{
		Notifications: ns,
		Pagin:         pag,
	}, nil
}

func (uc *usecase) UnreadCount(ctx context.Context, sc model.Scope) (int64, error) {
	sub, err := subjectOf(sc)
	if err != nil {
		return 0, err
	}
	n, err := uc.repo.CountUnread(ctx, sub)
	if err != nil {
		uc.l.Errorf(ctx, "internal.notification.usecase.UnreadCount.CountUnread: %v", err)
		return 0, err
	}
	return n, nil
}

func (uc *usecase) MarkRead(ctx context.Context, sc model.Scope, ids []int64) (int64, error) {
	sub, err := subjectOf(sc)
	if err != nil {
		return 0, err
	}
	if len(ids) == 0 {
		return 0, notification.ErrInvalidRequest
	}
	for _, id := range ids {
		if id <= 0 {
			return 0, notification.ErrInvalidRequest
		}
	}

	n, err := uc.repo.MarkRead(ctx, notifRepo.MarkReadOptions{TargetID: sub, IDs: ids})
	if err != nil {
		uc.l.Errorf(ctx, "internal.notification.usecase.MarkRead.MarkRead: %v", err)
		return 0, err
	}
	return n, nil
}

func (uc *usecase) MarkOneRead(ctx context.Context, sc model.Scope, id int64) (int64, error) {
	n, err := uc.MarkRead(ctx, sc, []int64{id})
	if err != nil || n > 0 {
		return n, err
	}

	if _, err := uc.repo.Detail(ctx, notifRepo.DetailOptions{TargetID: sc.SubjectID(), ID: id}); err != nil {
		if errors.Is(err, notifRepo.ErrNotFound) {
			return 0, notification.ErrNotificationNotFound
		}
		uc.l.Errorf(ctx, "internal.notification.usecase.MarkOneRead.Detail: %v", err)
		return 0, err
	}
	return 0, nil
}

func (uc *usecase) MarkAllRead(ctx context.Context, sc model.Scope) (int64, error) {
	sub, err := subjectOf(sc)
	if err != nil {
		return 0, err
	}
	n, err := uc.repo.MarkRead(ctx, notifRepo.MarkReadOptions{TargetID: sub})
	if err != nil {
		uc.l.Errorf(ctx, "internal.notification.usecase.MarkAllRead.MarkRead: %v", err)
		return 0, err
	}
	return n, nil
}
