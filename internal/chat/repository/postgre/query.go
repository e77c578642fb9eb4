package postgres

import (
	"time"

	"helpdesk-srv/internal/chat/repository"
	"helpdesk-srv/internal/model"

	"github.com/aarondl/null/v8"
	"github.com/aarondl/sqlboiler/v4/queries/qm"
)

const (
	tableMessages = `"ticket_messages"`

	insertMessageQuery = `INSERT INTO ticket_messages (ticket_id, sender_id, body, attachment_ref)
VALUES ($1, $2, $3, $4)
RETURNING id, ticket_id, sender_id, body, attachment_ref, created_at`
)

var messageColumns = []string{"id", "ticket_id", "sender_id", "body", "attachment_ref", "created_at"}

type dbMessage struct {
	ID            int64       `boil:"id"`
	TicketID      int64       `boil:"ticket_id"`
	SenderID      string      `boil:"sender_id"`
	Body          string      `boil:"body"`
	AttachmentRef null.String `boil:"attachment_ref"`
	CreatedAt     time.Time   `boil:"created_at"`
}

func (m dbMessage) toModel() model.ChatMessage {
	return model.ChatMessage{
		ID:            m.ID,
		TicketID:      m.TicketID,
		SenderID:      m.SenderID,
		Body:          m.Body,
		AttachmentRef: m.AttachmentRef.String,
		CreatedAt:     m.CreatedAt,
	}
}

func createArgs(opts repository.CreateOptions) []interface{} {
	return []interface{}{
		opts.TicketID,
		opts.SenderID,
		opts.Body,
		null.NewString(opts.AttachmentRef, opts.AttachmentRef != ""),
	}
}

func (r *implRepository) buildListQuery(ticketID int64) []qm.QueryMod {
	return []qm.QueryMod{
		qm.Select(messageColumns...),
		qm.From(tableMessages),
		qm.Where("ticket_id = ?", ticketID),
		qm.OrderBy("created_at ASC, id ASC"),
	}
}
