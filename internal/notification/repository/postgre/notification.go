package postgres

import (
	"context"
	"database/sql"
	"errors"

	"helpdesk-srv/internal/model"
	"helpdesk-srv/internal/notification/repository"
	"helpdesk-srv/pkg/paginator"
	postgresPkg "helpdesk-srv/pkg/postgre"

	"github.com/aarondl/sqlboiler/v4/queries"
)

func (r *implRepository) Create(ctx context.Context, opts repository.CreateOptions) (model.Notification, error) {
	if opts.TargetID == "" {
		return model.Notification{}, repository.ErrInvalidTarget
	}

	var row dbNotification
	err := queries.Raw(insertNotificationQuery,
		opts.TicketID, opts.Kind, opts.Message, opts.TargetID, model.NotificationStateUnread,
	).Bind(ctx, r.db, &row)
	if err != nil {
		r.l.Errorf(ctx, "internal.notification.repository.postgres.Create.Bind: %v", err)
		return model.Notification{}, err
	}
	return row.toModel(), nil
}

func (r *implRepository) Get(ctx context.Context, opts repository.GetOptions) ([]model.Notification, paginator.Paginator, error) {
	if opts.Filter.TargetID == "" {
		return nil, paginator.Paginator{}, repository.ErrInvalidTarget
	}
	pq := opts.PaginateQuery
	pq.Adjust()

	total, err := postgresPkg.Count(ctx, r.db, r.buildFilterQuery(opts.Filter)...)
	if err != nil {
		r.l.Errorf(ctx, "internal.notification.repository.postgres.Get.Count: %v", err)
		return nil, paginator.Paginator{}, err
	}

	var rows []*dbNotification
	if err := postgresPkg.NewQuery(r.buildGetQuery(opts, pq)...).Bind(ctx, r.db, &rows); err != nil {
		r.l.Errorf(ctx, "internal.notification.repository.postgres.Get.Bind: %v", err)
		return nil, paginator.Paginator{}, err
	}

	res := make([]model.Notification, len(rows))
	for i, n := range rows {
		res[i] = n.toModel()
	}

	return res, paginator.Paginator{
		Total:       total,
		Count:       int64(len(res)),
		PerPage:     pq.Limit,
		CurrentPage: pq.Page,
	}, nil
}

func (r *implRepository) Detail(ctx context.Context, opts repository.DetailOptions) (model.Notification, error) {
	if opts.TargetID == "" {
		return model.Notification{}, repository.ErrInvalidTarget
	}

	var row dbNotification
	if err := postgresPkg.NewQuery(r.buildDetailQuery(opts)...).Bind(ctx, r.db, &row); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Notification{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "internal.notification.repository.postgres.Detail.Bind: %v", err)
		return model.Notification{}, err
	}
	return row.toModel(), nil
}

func (r *implRepository) CountUnread(ctx context.Context, targetID string) (int64, error) {
	if targetID == "" {
		return 0, repository.ErrInvalidTarget
	}
	n, err := postgresPkg.Count(ctx, r.db, r.buildFilterQuery(repository.Filter{
		TargetID: targetID,
		State:    model.NotificationStateUnread,
	})...)
	if err != nil {
		r.l.Errorf(ctx, "internal.notification.repository.postgres.CountUnread.Count: %v", err)
		return 0, err
	}
	return n, nil
}

func (r *implRepository) MarkRead(ctx context.Context, opts repository.MarkReadOptions) (int64, error) {
	if opts.TargetID == "" {
		return 0, repository.ErrInvalidTarget
	}
	if err := postgresPkg.ValidateIDs(opts.IDs); err != nil {
		r.l.Warnf(ctx, "internal.notification.repository.postgres.MarkRead.ValidateIDs: %v", err)
		return 0, err
	}

	n, err := postgresPkg.UpdateAll(ctx, r.db, map[string]interface{}{
		"state":   model.NotificationStateRead,
		"read_at": r.clock(),
	}, r.buildMarkReadQuery(opts)...)
	if err != nil {
		r.l.Errorf(ctx, "internal.notification.repository.postgres.MarkRead.UpdateAll: %v", err)
		return 0, err
	}
	return n, nil
}
