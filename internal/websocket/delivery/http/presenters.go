package http

import (
	"strconv"
	"strings"

	"helpdesk-srv/internal/chat"
	"helpdesk-srv/internal/model"
	ws "helpdesk-srv/internal/websocket"
)

// flexID accepts a ticket id sent either as a JSON number or a numeric string.
type flexID int64

func (f *flexID) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		return nil
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return err
	}
	*f = flexID(v)
	return nil
}

// ticketRef collects every spelling clients use for the ticket id.
type ticketRef struct {
	TicketID      flexID `json:"ticketId"`
	TicketIDSnake flexID `json:"ticket_id"`
	TickID        flexID `json:"tick_id"`
	ID            flexID `json:"id"`
}

func (r ticketRef) ticketID() int64 {
	for _, v := range []flexID{r.TicketID, r.TicketIDSnake, r.TickID, r.ID} {
		if v > 0 {
			return int64(v)
		}
	}
	return 0
}

type authReq struct {
	Token string `json:"token"`
}

type joinReq struct {
	ticketRef
}

func (r joinReq) validate() error {
	if r.ticketID() <= 0 {
		return chat.ErrInvalidRequest
	}
	return nil
}

type sendReq struct {
	ticketRef
	Body          string `json:"body"`
	Message       string `json:"message"`
	AttachmentRef string `json:"attachmentRef"`
	FileURL       string `json:"fileUrl"`
}

func (r sendReq) validate() error {
	if r.ticketID() <= 0 {
		return chat.ErrInvalidRequest
	}
	return nil
}

func (r sendReq) toInput() chat.SendInput {
	body := r.Body
	if body == "" {
		body = r.Message
	}
	ref := r.AttachmentRef
	if ref == "" {
		ref = r.FileURL
	}
	return chat.SendInput{
		TicketID:      r.ticketID(),
		Body:          body,
		AttachmentRef: ref,
	}
}

type leaveReq struct {
	ticketRef
}

// --- Acks ---

type reasonAck struct {
	Status string `json:"status"`
	Reason string `json:"reason"`
}

type authAck struct {
	Status    string `json:"status"`
	SubjectID string `json:"subjectId"`
}

type joinedAck struct {
	Status   string              `json:"status"`
	TicketID int64               `json:"ticketId"`
	Messages []model.ChatMessage `json:"messages"`
}

type messageAck struct {
	Status  string            `json:"status"`
	Message model.ChatMessage `json:"message"`
}

type statusAck struct {
	Status string `json:"status"`
}

func newJoinedAck(o chat.JoinOutput) joinedAck {
	msgs := o.Messages
	if msgs == nil {
		msgs = []model.ChatMessage{}
	}
	return joinedAck{Status: ws.StatusJoined, TicketID: o.TicketID, Messages: msgs}
}
