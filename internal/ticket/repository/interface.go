package repository

import (
	"context"

	"helpdesk-srv/internal/model"
)

// Repository is the read-only ticket lookup consumed by chat and
// notifications. Ticket CRUD lives in another service.
//
//go:generate mockery --name Repository
type Repository interface {
	Detail(ctx context.Context, id int64) (model.Ticket, error)
}
