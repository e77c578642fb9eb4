package model

import "time"

// ChatMessage is one append-only entry of a ticket conversation.
type ChatMessage struct {
	ID            int64     `json:"id"`
	TicketID      int64     `json:"ticket_id"`
	SenderID      string    `json:"sender_id"`
	Body          string    `json:"body"`
	AttachmentRef string    `json:"attachment_ref,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}
