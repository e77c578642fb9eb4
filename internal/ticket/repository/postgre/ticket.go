package postgres

import (
	"context"
	"database/sql"
	"errors"

	"helpdesk-srv/internal/model"
	"helpdesk-srv/internal/ticket/repository"

	"github.com/aarondl/sqlboiler/v4/queries"
)

func (r *implRepository) Detail(ctx context.Context, id int64) (model.Ticket, error) {
	var row dbTicket
	if err := queries.Raw(detailQuery, id).Bind(ctx, r.db, &row); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Ticket{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "internal.ticket.repository.postgres.Detail.Bind: %v", err)
		return model.Ticket{}, err
	}
	return row.toModel(), nil
}
