package notification

import (
	"helpdesk-srv/internal/model"
	"helpdesk-srv/pkg/paginator"
)

// EventNotification is the socket event carrying a pushed notification.
const EventNotification = "notification"

const DefaultSnippetLength = 140

type AssignmentInput struct {
	TicketID   int64  `json:"ticket_id"`
	AssigneeID string `json:"assignee_id"`
}

type ListInput struct {
	PaginateQuery paginator.PaginateQuery
	UnreadOnly    bool
}

type ListOutput struct {
	Notifications []model.Notification
	Pagin         paginator.Paginator
}
