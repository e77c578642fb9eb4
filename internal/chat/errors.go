package chat

import "errors"

var (
	ErrTicketNotFound     = errors.New("ticket_not_found")
	ErrTicketNotAssigned  = errors.New("ticket_not_assigned")
	ErrNotAllowed         = errors.New("not_allowed")
	ErrNotJoined          = errors.New("not_joined")
	ErrInvalidRequest     = errors.New("invalid_request")
	ErrAttachmentNotFound = errors.New("attachment_not_found")
	ErrConnectionClosed   = errors.New("connection_closed")
)
