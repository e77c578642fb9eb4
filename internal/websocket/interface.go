package websocket

import (
	"context"
)

// UseCase is the connection registry. It owns every live connection and the
// rooms they belong to, and answers presence queries for the notification
// dispatcher.
type UseCase interface {
	// Register adds an authenticated client and joins it to its subject room.
	Register(ctx context.Context, c Client) error
	// Disconnect removes the client from every room. Safe to call twice.
	Disconnect(ctx context.Context, connID string)

	Join(connID, room string) error
	Leave(connID, room string)
	InRoom(connID, room string) bool
	// Broadcast delivers event to every member of room except excludeConnID.
	Broadcast(room, event string, payload any, excludeConnID string)
	// PresentSubjects is a snapshot of the subjects with a connection in room.
	PresentSubjects(room string) map[string]struct{}

	Stats() HubStats
	Shutdown(ctx context.Context) error
}
