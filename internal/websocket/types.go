package websocket

import (
	"encoding/json"

	"helpdesk-srv/internal/model"
)

// Inbound and outbound frame events.
const (
	EventAuth         = "auth"
	EventJoinTicket   = "join_ticket"
	EventMessage      = "message"
	EventLeaveTicket  = "leave_ticket"
	EventAck          = "ack"
	EventNotification = "notification"
)

// Ack statuses.
const (
	StatusJoined    = "joined"
	StatusForbidden = "forbidden"
	StatusError     = "error"
	StatusOK        = "ok"
)

// Client is one live transport as seen by the registry.
type Client interface {
	ID() string
	Scope() model.Scope
	// Send queues an encoded frame without blocking. It reports false when
	// the frame was dropped.
	Send(data []byte) bool
	Close()
}

// Frame is the envelope of every message on the socket.
type Frame struct {
	Event string          `json:"event"`
	ID    *int64          `json:"id,omitempty"`
	Data  json.RawMessage `json:"data,omitempty"`
}

// OutFrame is a frame built by the server.
type OutFrame struct {
	Event string `json:"event"`
	ID    *int64 `json:"id,omitempty"`
	Data  any    `json:"data,omitempty"`
}

func Encode(event string, id *int64, data any) ([]byte, error) {
	return json.Marshal(OutFrame{Event: event, ID: id, Data: data})
}

type HubStats struct {
	ActiveConnections int `json:"active_connections"`
	UniqueSubjects    int `json:"unique_subjects"`
	Rooms             int `json:"rooms"`
}
