package chat

import "helpdesk-srv/internal/model"

// EventMessage is the room event carrying a new chat message.
const EventMessage = "message"

type SendInput struct {
	TicketID      int64
	Body          string
	AttachmentRef string
}

type JoinOutput struct {
	TicketID int64
	Messages []model.ChatMessage
}
