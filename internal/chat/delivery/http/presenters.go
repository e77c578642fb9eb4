package http

import (
	"helpdesk-srv/internal/model"
	"helpdesk-srv/pkg/response"
)

type messageResp struct {
	ID            int64              `json:"id"`
	TicketID      int64              `json:"ticket_id"`
	SenderID      string             `json:"sender_id"`
	Body          string             `json:"body"`
	AttachmentRef string             `json:"attachment_ref,omitempty"`
	CreatedAt     response.Timestamp `json:"created_at"`
}

type historyResp struct {
	TicketID int64         `json:"ticket_id"`
	Messages []messageResp `json:"messages"`
}

func (h *Handler) newHistoryResp(ticketID int64, msgs []model.ChatMessage) historyResp {
	res := historyResp{
		TicketID: ticketID,
		Messages: make([]messageResp, len(msgs)),
	}
	for i, m := range msgs {
		res.Messages[i] = messageResp{
			ID:            m.ID,
			TicketID:      m.TicketID,
			SenderID:      m.SenderID,
			Body:          m.Body,
			AttachmentRef: m.AttachmentRef,
			CreatedAt:     response.Timestamp(m.CreatedAt),
		}
	}
	return res
}
