package http

import (
	"context"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"golang.org/x/time/rate"

	"helpdesk-srv/internal/model"
	ws "helpdesk-srv/internal/websocket"
	"helpdesk-srv/pkg/log"
)

// connection is one socket. readPump is the only reader and writePump the
// only writer of conn; everything else talks to it through send and done.
type connection struct {
	h       *Handler
	id      string
	conn    *websocket.Conn
	send    chan []byte
	done    chan struct{}
	limiter *rate.Limiter

	ctx    context.Context
	cancel context.CancelFunc

	mu          sync.RWMutex
	scope       model.Scope
	authed      bool
	closeCode   int
	closeReason string
	authTimer   *time.Timer

	closeOnce sync.Once
}

var _ ws.Client = &connection{}

func (h *Handler) newConnection(id string, conn *websocket.Conn) *connection {
	limit := rate.Inf
	if h.cfg.FramesPerSecond > 0 {
		limit = rate.Limit(h.cfg.FramesPerSecond)
	}
	burst := h.cfg.Burst
	if burst <= 0 {
		burst = 1
	}

	ctx, cancel := context.WithCancel(log.WithFields(context.Background(), "conn_id", id))
	return &connection{
		h:         h,
		id:        id,
		conn:      conn,
		send:      make(chan []byte, h.cfg.SendBufferSize),
		done:      make(chan struct{}),
		limiter:   rate.NewLimiter(limit, burst),
		ctx:       ctx,
		cancel:    cancel,
		closeCode: websocket.CloseNormalClosure,
	}
}

func (c *connection) ID() string { return c.id }

func (c *connection) Scope() model.Scope {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.scope
}

func (c *connection) isAuthed() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.authed
}

// authenticate binds the identity and registers with the hub. A connection
// is authenticated at most once.
func (c *connection) authenticate(sc model.Scope) error {
	c.mu.Lock()
	if c.authed {
		c.mu.Unlock()
		return nil
	}
	c.scope = sc
	c.authed = true
	if c.authTimer != nil {
		c.authTimer.Stop()
	}
	c.mu.Unlock()

	return c.h.hub.Register(c.logCtx(), c)
}

// logCtx carries the connection id and, once known, the subject.
func (c *connection) logCtx() context.Context {
	if sc := c.Scope(); c.isAuthed() {
		return log.WithFields(c.ctx, "subject", sc.SubjectID())
	}
	return c.ctx
}

// expectAuth closes the connection if no credential arrives in time.
func (c *connection) expectAuth(timeout time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.authTimer = time.AfterFunc(timeout, func() {
		if !c.isAuthed() {
			c.h.l.Infof(c.ctx, "websocket: closing %s, no credential within %s", c.id, timeout)
			c.closeWith(websocket.ClosePolicyViolation, ws.ReasonUnauthorized)
		}
	})
}

func (c *connection) Send(data []byte) bool {
	select {
	case <-c.done:
		return false
	default:
	}
	select {
	case c.send <- data:
		return true
	default:
		return false
	}
}

func (c *connection) Close() {
	c.closeOnce.Do(func() {
		c.mu.Lock()
		if c.authTimer != nil {
			c.authTimer.Stop()
		}
		c.mu.Unlock()
		close(c.done)
	})
}

func (c *connection) closeWith(code int, reason string) {
	c.mu.Lock()
	c.closeCode = code
	c.closeReason = reason
	c.mu.Unlock()
	c.Close()
}

// reply queues a frame, answering id when the inbound frame carried one.
func (c *connection) reply(event string, id *int64, data any) {
	raw, err := ws.Encode(event, id, data)
	if err != nil {
		c.h.l.Errorf(c.ctx, "internal.websocket.delivery.http.reply.Encode: %v", err)
		return
	}
	if !c.Send(raw) {
		c.h.l.Warnf(c.ctx, "websocket: dropped %s reply for %s", event, c.id)
	}
}

func (c *connection) ack(id *int64, data any) {
	if id == nil {
		return
	}
	c.reply(ws.EventAck, id, data)
}

// readPump runs in its own goroutine. Leaving it removes the connection from
// every room before anything else happens.
func (c *connection) readPump() {
	defer func() {
		c.h.hub.Disconnect(c.ctx, c.id)
		c.Close()
		c.cancel()
	}()

	c.conn.SetReadLimit(c.h.cfg.MaxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(c.h.cfg.PongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(c.h.cfg.PongWait))
	})

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure, websocket.CloseAbnormalClosure) {
				c.h.l.Warnf(c.ctx, "websocket: read error for %s: %v", c.id, err)
			}
			return
		}
		c.handleFrame(message)
	}
}

// writePump runs in its own goroutine. On close it flushes what is queued,
// sends a close frame and tears the socket down, which unblocks readPump.
func (c *connection) writePump() {
	ticker := time.NewTicker(c.h.cfg.PingInterval)
	defer func() {
		ticker.Stop()
		c.Close()
		_ = c.conn.Close()
	}()

	for {
		select {
		case message := <-c.send:
			if err := c.write(message); err != nil {
				return
			}

		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(c.h.cfg.WriteWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}

		case <-c.done:
			c.flush()
			c.mu.RLock()
			msg := websocket.FormatCloseMessage(c.closeCode, c.closeReason)
			c.mu.RUnlock()
			_ = c.conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(c.h.cfg.WriteWait))
			return
		}
	}
}

func (c *connection) write(message []byte) error {
	_ = c.conn.SetWriteDeadline(time.Now().Add(c.h.cfg.WriteWait))
	return c.conn.WriteMessage(websocket.TextMessage, message)
}

func (c *connection) flush() {
	for {
		select {
		case message := <-c.send:
			if err := c.write(message); err != nil {
				return
			}
		default:
			return
		}
	}
}
