package usecase

import (
	"context"

	"helpdesk-srv/internal/model"
	ws "helpdesk-srv/internal/websocket"
	"helpdesk-srv/pkg/metrics"
)

func (h *Hub) Register(ctx context.Context, c ws.Client) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return ws.ErrHubClosed
	}
	if _, ok := h.conns[c.ID()]; ok {
		return ws.ErrAlreadyRegistered
	}
	if h.maxConnections > 0 && len(h.conns) >= h.maxConnections {
		h.l.Warnf(ctx, "internal.websocket.usecase.Register: max connections reached, rejecting %s", c.Scope().SubjectID())
		return ws.ErrMaxConnectionsReached
	}

	h.conns[c.ID()] = &member{client: c, rooms: make(map[string]struct{})}
	h.joinLocked(c.ID(), model.UserRoom(c.Scope().SubjectID()))
	h.updateGaugesLocked()

	h.l.Debugf(ctx, "websocket: registered %s for %s (total %d)", c.ID(), c.Scope().SubjectID(), len(h.conns))
	return nil
}

func (h *Hub) Disconnect(ctx context.Context, connID string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	m, ok := h.conns[connID]
	if !ok {
		return
	}
	for room := range m.rooms {
		h.leaveLocked(connID, room)
	}
	delete(h.conns, connID)
	h.updateGaugesLocked()

	h.l.Debugf(ctx, "websocket: disconnected %s (remaining %d)", connID, len(h.conns))
}

// Join fails only when the connection is not (or no longer) registered.
func (h *Hub) Join(connID, room string) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.conns[connID]; !ok {
		return ws.ErrConnectionClosed
	}
	h.joinLocked(connID, room)
	h.updateGaugesLocked()
	return nil
}

func (h *Hub) Leave(connID, room string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.leaveLocked(connID, room)
	h.updateGaugesLocked()
}

func (h *Hub) InRoom(connID, room string) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()

	_, ok := h.rooms[room][connID]
	return ok
}

func (h *Hub) Broadcast(room, event string, payload any, excludeConnID string) {
	data, err := ws.Encode(event, nil, payload)
	if err != nil {
		h.l.Errorf(context.Background(), "internal.websocket.usecase.Broadcast.Encode: %v", err)
		return
	}

	// Sends are non-blocking, so holding the read lock keeps per-room order
	// for callers that already serialize on the room.
	h.mu.RLock()
	defer h.mu.RUnlock()

	for connID := range h.rooms[room] {
		if connID == excludeConnID {
			continue
		}
		m := h.conns[connID]
		if m == nil {
			continue
		}
		if !m.client.Send(data) {
			h.l.Warnf(context.Background(), "websocket: dropped %s frame for %s (buffer full)", event, connID)
		}
	}
}

func (h *Hub) PresentSubjects(room string) map[string]struct{} {
	h.mu.RLock()
	defer h.mu.RUnlock()

	out := make(map[string]struct{}, len(h.rooms[room]))
	for connID := range h.rooms[room] {
		if m := h.conns[connID]; m != nil {
			out[m.client.Scope().SubjectID()] = struct{}{}
		}
	}
	return out
}

func (h *Hub) Stats() ws.HubStats {
	h.mu.RLock()
	defer h.mu.RUnlock()

	subjects := make(map[string]struct{}, len(h.conns))
	for _, m := range h.conns {
		subjects[m.client.Scope().SubjectID()] = struct{}{}
	}
	return ws.HubStats{
		ActiveConnections: len(h.conns),
		UniqueSubjects:    len(subjects),
		Rooms:             len(h.rooms),
	}
}

// Shutdown closes every client and refuses further registrations.
func (h *Hub) Shutdown(ctx context.Context) error {
	h.mu.Lock()
	clients := make([]ws.Client, 0, len(h.conns))
	for _, m := range h.conns {
		clients = append(clients, m.client)
	}
	h.closed = true
	h.conns = make(map[string]*member)
	h.rooms = make(map[string]map[string]struct{})
	h.updateGaugesLocked()
	h.mu.Unlock()

	for _, c := range clients {
		c.Close()
	}
	h.l.Infof(ctx, "websocket: hub closed %d connections", len(clients))
	return nil
}

func (h *Hub) joinLocked(connID, room string) {
	members, ok := h.rooms[room]
	if !ok {
		members = make(map[string]struct{})
		h.rooms[room] = members
	}
	members[connID] = struct{}{}
	h.conns[connID].rooms[room] = struct{}{}
}

func (h *Hub) leaveLocked(connID, room string) {
	if members, ok := h.rooms[room]; ok {
		delete(members, connID)
		if len(members) == 0 {
			delete(h.rooms, room)
		}
	}
	if m, ok := h.conns[connID]; ok {
		delete(m.rooms, room)
	}
}

func (h *Hub) updateGaugesLocked() {
	metrics.WSConnections.Set(float64(len(h.conns)))
	metrics.WSRooms.Set(float64(len(h.rooms)))
}
