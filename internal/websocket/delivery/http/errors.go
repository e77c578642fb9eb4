package http

import (
	"errors"
	"net/http"

	"github.com/gorilla/websocket"

	"helpdesk-srv/internal/chat"
	ws "helpdesk-srv/internal/websocket"
	pkgErrors "helpdesk-srv/pkg/errors"
)

var (
	errUnauthorized = pkgErrors.NewHTTPError(401, "Unauthorized", http.StatusUnauthorized)
	errUnavailable  = pkgErrors.NewHTTPError(503, "Too many connections", http.StatusServiceUnavailable)
)

// ackForError maps a usecase error to the ack sent back on the socket.
// Permission failures are "forbidden", everything known is "error" with the
// error text as reason, and anything else is an internal error.
func ackForError(err error) reasonAck {
	switch {
	case errors.Is(err, chat.ErrNotAllowed),
		errors.Is(err, chat.ErrTicketNotAssigned):
		return reasonAck{Status: ws.StatusForbidden, Reason: err.Error()}
	case errors.Is(err, chat.ErrTicketNotFound),
		errors.Is(err, chat.ErrNotJoined),
		errors.Is(err, chat.ErrInvalidRequest),
		errors.Is(err, chat.ErrAttachmentNotFound),
		errors.Is(err, chat.ErrConnectionClosed):
		return reasonAck{Status: ws.StatusError, Reason: err.Error()}
	}
	return reasonAck{Status: ws.StatusError, Reason: ws.ReasonInternal}
}

// closeCodeFor picks the close frame code sent when registration fails.
func closeCodeFor(err error) int {
	if errors.Is(err, ws.ErrMaxConnectionsReached) {
		return websocket.CloseTryAgainLater
	}
	return websocket.CloseGoingAway
}
