package postgres

import (
	"time"

	"helpdesk-srv/internal/model"
	"helpdesk-srv/internal/notification/repository"
	"helpdesk-srv/pkg/paginator"
	postgresPkg "helpdesk-srv/pkg/postgre"

	"github.com/aarondl/null/v8"
	"github.com/aarondl/sqlboiler/v4/queries/qm"
)

const (
	tableNotifications = `"notifications"`

	insertNotificationQuery = `INSERT INTO notifications (ticket_id, kind, message, target_id, state)
VALUES ($1, $2, $3, $4, $5)
RETURNING id, ticket_id, kind, message, target_id, state, created_at, read_at`
)

var notificationColumns = []string{"id", "ticket_id", "kind", "message", "target_id", "state", "created_at", "read_at"}

type dbNotification struct {
	ID        int64     `boil:"id"`
	TicketID  int64     `boil:"ticket_id"`
	Kind      string    `boil:"kind"`
	Message   string    `boil:"message"`
	TargetID  string    `boil:"target_id"`
	State     string    `boil:"state"`
	CreatedAt time.Time `boil:"created_at"`
	ReadAt    null.Time `boil:"read_at"`
}

func (n dbNotification) toModel() model.Notification {
	res := model.Notification{
		ID:        n.ID,
		TicketID:  n.TicketID,
		Kind:      n.Kind,
		Message:   n.Message,
		TargetID:  n.TargetID,
		State:     n.State,
		CreatedAt: n.CreatedAt,
	}
	if n.ReadAt.Valid {
		t := n.ReadAt.Time
		res.ReadAt = &t
	}
	return res
}

func (r *implRepository) buildFilterQuery(f repository.Filter) []qm.QueryMod {
	mods := []qm.QueryMod{
		qm.From(tableNotifications),
		qm.Where("target_id = ?", f.TargetID),
	}
	if f.State != "" {
		mods = append(mods, qm.Where("state = ?", f.State))
	}
	return mods
}

func (r *implRepository) buildGetQuery(opts repository.GetOptions, pq paginator.PaginateQuery) []qm.QueryMod {
	mods := append([]qm.QueryMod{qm.Select(notificationColumns...)}, r.buildFilterQuery(opts.Filter)...)
	return append(mods,
		qm.OrderBy("created_at DESC, id DESC"),
		qm.Limit(int(pq.Limit)),
		qm.Offset(int(pq.Offset())),
	)
}

func (r *implRepository) buildDetailQuery(opts repository.DetailOptions) []qm.QueryMod {
	mods := append([]qm.QueryMod{qm.Select(notificationColumns...)}, r.buildFilterQuery(repository.Filter{TargetID: opts.TargetID})...)
	return append(mods, qm.Where("id = ?", opts.ID), qm.Limit(1))
}

func (r *implRepository) buildMarkReadQuery(opts repository.MarkReadOptions) []qm.QueryMod {
	mods := r.buildFilterQuery(repository.Filter{
		TargetID: opts.TargetID,
		State:    model.NotificationStateUnread,
	})
	if len(opts.IDs) > 0 {
		mods = append(mods, qm.WhereIn("id IN ?", postgresPkg.ConvertToInterface(opts.IDs)...))
	}
	return mods
}
