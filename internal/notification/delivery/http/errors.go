package http

import (
	"net/http"

	"helpdesk-srv/internal/notification"
	"helpdesk-srv/pkg/errors"
	"helpdesk-srv/pkg/response"
)

var (
	errWrongParam  = errors.NewHTTPError(120001, "Wrong param", http.StatusBadRequest)
	errWrongBody   = errors.NewHTTPError(120002, "Wrong body", http.StatusBadRequest)
	errNotFound    = errors.NewNotFoundHTTPError("Notification not found")
	errTicketMiss  = errors.NewNotFoundHTTPError("Ticket not found")
	errNotAssigned = errors.NewHTTPError(120005, "Ticket is not assigned", http.StatusConflict)
)

var errMap = response.ErrorMapping{
	notification.ErrInvalidRequest:       errWrongParam,
	notification.ErrNotificationNotFound: errNotFound,
	notification.ErrTicketNotFound:       errTicketMiss,
	notification.ErrTicketNotAssigned:    errNotAssigned,
	notification.ErrForbidden:            errors.NewForbiddenHTTPError(),
}
