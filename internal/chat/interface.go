package chat

import (
	"context"

	"helpdesk-srv/internal/model"
)

// UseCase is the ticket conversation channel.
//
//go:generate mockery --name UseCase
type UseCase interface {
	// Join places connID in the ticket room and returns the full history.
	Join(ctx context.Context, sc model.Scope, connID string, ticketID int64) (JoinOutput, error)
	// Send persists a message and fans it out to the room, sender excluded.
	Send(ctx context.Context, sc model.Scope, connID string, input SendInput) (model.ChatMessage, error)
	Leave(ctx context.Context, connID string, ticketID int64)
	History(ctx context.Context, sc model.Scope, ticketID int64) ([]model.ChatMessage, error)
}

// Rooms is the slice of the connection registry chat needs.
type Rooms interface {
	Join(connID, room string) error
	Leave(connID, room string)
	InRoom(connID, room string) bool
	Broadcast(room, event string, payload any, excludeConnID string)
}

// Notifier is told about every persisted message.
type Notifier interface {
	OnChatMessage(ctx context.Context, ticket model.Ticket, senderID, body string) error
}
