package http

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/gorilla/websocket"

	"helpdesk-srv/internal/credential"
	ws "helpdesk-srv/internal/websocket"
	"helpdesk-srv/pkg/metrics"
	"helpdesk-srv/pkg/response"
)

type frameHandler func(ctx context.Context, f ws.Frame) (ack any, status string)

func (c *connection) handlers() map[string]frameHandler {
	return map[string]frameHandler{
		ws.EventAuth:        c.onAuth,
		ws.EventJoinTicket:  c.onJoinTicket,
		ws.EventMessage:     c.onMessage,
		ws.EventLeaveTicket: c.onLeaveTicket,
	}
}

// handleFrame decodes and dispatches one inbound frame. It never panics and
// every frame carrying an id gets exactly one ack. A handler returning a nil
// ack has already queued its own.
func (c *connection) handleFrame(raw []byte) {
	var f ws.Frame
	if err := json.Unmarshal(raw, &f); err != nil {
		metrics.WSFrames.WithLabelValues("invalid", ws.StatusError).Inc()
		c.h.l.Debugf(c.ctx, "websocket: undecodable frame from %s: %v", c.id, err)
		return
	}

	ctx := c.logCtx()
	defer func() {
		if rec := recover(); rec != nil {
			c.h.l.Errorf(ctx, "internal.websocket.delivery.http.handleFrame.%s: panic: %v", f.Event, rec)
			metrics.WSFrames.WithLabelValues(eventLabel(f.Event), ws.StatusError).Inc()
			c.reportPanic(f.Event, rec)
			c.ack(f.ID, reasonAck{Status: ws.StatusError, Reason: ws.ReasonInternal})
		}
	}()

	if !c.limiter.Allow() {
		metrics.WSFrames.WithLabelValues(eventLabel(f.Event), "rate_limited").Inc()
		c.ack(f.ID, reasonAck{Status: ws.StatusError, Reason: ws.ReasonRateLimited})
		return
	}

	handle, ok := c.handlers()[f.Event]
	if !ok {
		metrics.WSFrames.WithLabelValues("unknown", ws.StatusError).Inc()
		c.ack(f.ID, reasonAck{Status: ws.StatusError, Reason: ws.ReasonUnknownEvent})
		return
	}
	if f.Event != ws.EventAuth && !c.isAuthed() {
		metrics.WSFrames.WithLabelValues(eventLabel(f.Event), ws.StatusError).Inc()
		c.ack(f.ID, reasonAck{Status: ws.StatusError, Reason: ws.ReasonUnauthorized})
		return
	}

	ack, status := handle(ctx, f)
	metrics.WSFrames.WithLabelValues(eventLabel(f.Event), status).Inc()
	if ack != nil {
		c.ack(f.ID, ack)
	}
}

// eventLabel bounds the metric label set to the known events.
func eventLabel(event string) string {
	switch event {
	case ws.EventAuth, ws.EventJoinTicket, ws.EventMessage, ws.EventLeaveTicket:
		return event
	}
	return "unknown"
}

func (c *connection) reportPanic(event string, rec any) {
	if c.h.discord == nil {
		return
	}
	report := response.BuildPanicReport(fmt.Sprintf("websocket frame %q", event), rec)
	go func() {
		_ = c.h.discord.ReportBug(context.Background(), report)
	}()
}

func decode(f ws.Frame, v any) error {
	if len(f.Data) == 0 {
		return nil
	}
	return json.Unmarshal(f.Data, v)
}

func (c *connection) onAuth(ctx context.Context, f ws.Frame) (any, string) {
	if c.isAuthed() {
		return reasonAck{Status: ws.StatusError, Reason: ws.ReasonAlreadyAuthed}, ws.StatusError
	}

	var req authReq
	if err := decode(f, &req); err != nil {
		return reasonAck{Status: ws.StatusError, Reason: ws.ReasonInvalidFrame}, ws.StatusError
	}

	sc, err := c.h.credentials.Resolve(ctx, credential.CleanToken(req.Token))
	if err != nil {
		c.h.l.Infof(ctx, "websocket: auth frame rejected for %s: %s", c.id, credential.ReasonOf(err))
		c.ack(f.ID, reasonAck{Status: ws.StatusError, Reason: credential.PublicReason})
		c.closeWith(websocket.ClosePolicyViolation, credential.PublicReason)
		return nil, ws.StatusError
	}
	if err := c.authenticate(sc); err != nil {
		c.h.l.Warnf(ctx, "internal.websocket.delivery.http.onAuth.Register: %v", err)
		c.ack(f.ID, reasonAck{Status: ws.StatusError, Reason: err.Error()})
		c.closeWith(closeCodeFor(err), err.Error())
		return nil, ws.StatusError
	}

	return authAck{Status: ws.StatusOK, SubjectID: sc.SubjectID()}, ws.StatusOK
}

func (c *connection) onJoinTicket(ctx context.Context, f ws.Frame) (any, string) {
	var req joinReq
	if err := decode(f, &req); err != nil {
		return reasonAck{Status: ws.StatusError, Reason: ws.ReasonInvalidFrame}, ws.StatusError
	}
	if err := req.validate(); err != nil {
		return ackForError(err), ws.StatusError
	}

	out, err := c.h.chat.Join(ctx, c.Scope(), c.id, req.ticketID())
	if err != nil {
		a := ackForError(err)
		if a.Reason == ws.ReasonInternal {
			c.h.l.Errorf(ctx, "internal.websocket.delivery.http.onJoinTicket.Join: %v", err)
		}
		return a, a.Status
	}
	return newJoinedAck(out), ws.StatusJoined
}

func (c *connection) onMessage(ctx context.Context, f ws.Frame) (any, string) {
	var req sendReq
	if err := decode(f, &req); err != nil {
		return reasonAck{Status: ws.StatusError, Reason: ws.ReasonInvalidFrame}, ws.StatusError
	}
	if err := req.validate(); err != nil {
		return ackForError(err), ws.StatusError
	}

	msg, err := c.h.chat.Send(ctx, c.Scope(), c.id, req.toInput())
	if err != nil {
		a := ackForError(err)
		if a.Reason == ws.ReasonInternal {
			c.h.l.Errorf(ctx, "internal.websocket.delivery.http.onMessage.Send: %v", err)
		}
		return a, a.Status
	}
	return messageAck{Status: ws.StatusOK, Message: msg}, ws.StatusOK
}

func (c *connection) onLeaveTicket(ctx context.Context, f ws.Frame) (any, string) {
	var req leaveReq
	if err := decode(f, &req); err != nil {
		return reasonAck{Status: ws.StatusError, Reason: ws.ReasonInvalidFrame}, ws.StatusError
	}
	c.h.chat.Leave(ctx, c.id, req.ticketID())
	return statusAck{Status: ws.StatusOK}, ws.StatusOK
}
