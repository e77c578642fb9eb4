package notification

import "errors"

var (
	ErrNotificationNotFound = errors.New("notification not found")
	ErrTicketNotFound       = errors.New("ticket not found")
	ErrTicketNotAssigned    = errors.New("ticket not assigned")
	ErrInvalidRequest       = errors.New("invalid request")
	ErrForbidden            = errors.New("user claim required")
)
