package notification

import (
	"context"

	"helpdesk-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// OnAssignment always records a notification for the new assignee.
	OnAssignment(ctx context.Context, ticket model.Ticket, assigneeID string) (model.Notification, error)
	// NotifyAssignment loads the ticket and calls OnAssignment.
	NotifyAssignment(ctx context.Context, input AssignmentInput) (model.Notification, error)
	// OnChatMessage records a notification for each participant who is
	// neither the sender nor watching the ticket room.
	OnChatMessage(ctx context.Context, ticket model.Ticket, senderID, body string) error

	List(ctx context.Context, sc model.Scope, input ListInput) (ListOutput, error)
	UnreadCount(ctx context.Context, sc model.Scope) (int64, error)
	MarkRead(ctx context.Context, sc model.Scope, ids []int64) (int64, error)
	// MarkOneRead returns ErrNotificationNotFound when id is not one of the
	// caller's notifications. An already read one yields 0.
	MarkOneRead(ctx context.Context, sc model.Scope, id int64) (int64, error)
	MarkAllRead(ctx context.Context, sc model.Scope) (int64, error)
}

// Presence answers who currently watches a room.
type Presence interface {
	PresentSubjects(room string) map[string]struct{}
}

// Pusher delivers a stored notification to a subject in real time.
type Pusher interface {
	Push(ctx context.Context, subjectID string, n model.Notification) error
}
