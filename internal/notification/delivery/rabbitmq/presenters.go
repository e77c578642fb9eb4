package rabbitmq

import "helpdesk-srv/internal/notification"

// assignedEvent accepts both the current and the legacy field names.
type assignedEvent struct {
	TicketID       int64  `json:"ticket_id"`
	LegacyTicketID int64  `json:"tick_id"`
	AssigneeID     string `json:"assignee_id"`
}

func (e assignedEvent) toInput() notification.AssignmentInput {
	id := e.TicketID
	if id == 0 {
		id = e.LegacyTicketID
	}
	return notification.AssignmentInput{TicketID: id, AssigneeID: e.AssigneeID}
}
