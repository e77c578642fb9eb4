package repository

import (
	"context"

	"helpdesk-srv/internal/model"
	"helpdesk-srv/pkg/paginator"
)

//go:generate mockery --name Repository
type Repository interface {
	Create(ctx context.Context, opts CreateOptions) (model.Notification, error)
	Get(ctx context.Context, opts GetOptions) ([]model.Notification, paginator.Paginator, error)
	// Detail returns ErrNotFound when the row is missing or belongs to
	// another target.
	Detail(ctx context.Context, opts DetailOptions) (model.Notification, error)
	CountUnread(ctx context.Context, targetID string) (int64, error)
	// MarkRead flips unread rows of the target to read and returns how many
	// changed. Empty IDs means every unread row of the target.
	MarkRead(ctx context.Context, opts MarkReadOptions) (int64, error)
}
