package http

import (
	"net/http"

	"helpdesk-srv/internal/chat"
	"helpdesk-srv/pkg/errors"
	"helpdesk-srv/pkg/response"
)

var (
	errWrongParam = errors.NewHTTPError(110001, "Wrong param", http.StatusBadRequest)
	errNotFound   = errors.NewNotFoundHTTPError("Ticket not found")
	errNotAssign  = errors.NewHTTPError(110003, "Ticket is not assigned yet", http.StatusForbidden)
	errNotAllowed = errors.NewHTTPError(110004, "Not allowed to access this ticket", http.StatusForbidden)
)

var errMap = response.ErrorMapping{
	chat.ErrInvalidRequest:    errWrongParam,
	chat.ErrTicketNotFound:    errNotFound,
	chat.ErrTicketNotAssigned: errNotAssign,
	chat.ErrNotAllowed:        errNotAllowed,
}
