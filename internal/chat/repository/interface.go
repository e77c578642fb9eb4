package repository

import (
	"context"

	"helpdesk-srv/internal/model"
)

//go:generate mockery --name Repository
type Repository interface {
	Create(ctx context.Context, opts CreateOptions) (model.ChatMessage, error)
	// ListByTicket returns the conversation in ascending (created_at, id) order.
	ListByTicket(ctx context.Context, ticketID int64) ([]model.ChatMessage, error)
}
