package model

import "strconv"

const (
	TicketStatusUnassigned = "unassigned"
	TicketStatusAssigned   = "assigned"
	TicketStatusClosed     = "closed"
	TicketStatusReopened   = "reopened"
)

// Ticket is the slice of a ticket the chat and notification flows read.
type Ticket struct {
	ID         int64  `json:"id"`
	Title      string `json:"title"`
	Status     string `json:"status"`
	ProjectID  string `json:"project_id,omitempty"`
	CreatorID  string `json:"creator_id"`
	AssigneeID string `json:"assignee_id,omitempty"`
}

func (t Ticket) IsAssigned() bool {
	return t.AssigneeID != ""
}

// RoomName is the chat room of the ticket.
func (t Ticket) RoomName() string {
	return TicketRoom(t.ID)
}

func TicketRoom(ticketID int64) string {
	return "ticket_" + strconv.FormatInt(ticketID, 10)
}

func UserRoom(subjectID string) string {
	return "user_" + subjectID
}
