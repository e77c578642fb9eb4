package model

import "time"

const (
	NotificationKindAssignment = "T"
	NotificationKindChat       = "C"

	NotificationStateUnread = "unread"
	NotificationStateRead   = "read"
)

type Notification struct {
	ID        int64      `json:"id"`
	TicketID  int64      `json:"ticket_id"`
	Kind      string     `json:"kind"`
	Message   string     `json:"message"`
	TargetID  string     `json:"target_id"`
	State     string     `json:"state"`
	CreatedAt time.Time  `json:"created_at"`
	ReadAt    *time.Time `json:"read_at,omitempty"`
}

func (n Notification) IsUnread() bool {
	return n.State == NotificationStateUnread
}
