package websocket

import "errors"

var (
	ErrConnectionClosed      = errors.New("connection closed")
	ErrMaxConnectionsReached = errors.New("maximum connections reached")
	ErrAlreadyRegistered     = errors.New("connection already registered")
	ErrHubClosed             = errors.New("hub closed")
)

// Ack reasons that do not come from a domain error.
const (
	ReasonUnknownEvent  = "unknown_event"
	ReasonInvalidFrame  = "invalid_frame"
	ReasonRateLimited   = "rate_limited"
	ReasonInternal      = "internal_error"
	ReasonUnauthorized  = "unauthorized"
	ReasonAlreadyAuthed = "already_authenticated"
)
