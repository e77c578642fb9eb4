package postgres

import (
	"context"

	"helpdesk-srv/internal/chat/repository"
	"helpdesk-srv/internal/model"
	postgresPkg "helpdesk-srv/pkg/postgre"

	"github.com/aarondl/sqlboiler/v4/queries"
)

func (r *implRepository) Create(ctx context.Context, opts repository.CreateOptions) (model.ChatMessage, error) {
	var row dbMessage
	if err := queries.Raw(insertMessageQuery, createArgs(opts)...).Bind(ctx, r.db, &row); err != nil {
		r.l.Errorf(ctx, "internal.chat.repository.postgres.Create.Bind: %v", err)
		return model.ChatMessage{}, err
	}
	return row.toModel(), nil
}

func (r *implRepository) ListByTicket(ctx context.Context, ticketID int64) ([]model.ChatMessage, error) {
	var rows []*dbMessage
	if err := postgresPkg.NewQuery(r.buildListQuery(ticketID)...).Bind(ctx, r.db, &rows); err != nil {
		r.l.Errorf(ctx, "internal.chat.repository.postgres.ListByTicket.Bind: %v", err)
		return nil, err
	}

	res := make([]model.ChatMessage, len(rows))
	for i, m := range rows {
		res[i] = m.toModel()
	}
	return res, nil
}
