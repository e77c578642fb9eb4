package http

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"helpdesk-srv/internal/credential"
	"helpdesk-srv/internal/model"
	"helpdesk-srv/pkg/response"
)

// HandleWebSocket upgrades the request to the ticket chat socket.
// @Summary Ticket chat socket
// @Description Upgrade to a websocket carrying JSON frames {event, id, data}. The credential may come from the token query, an auth header, or a first "auth" frame.
// @Tags Chat
// @Param token query string false "JWT or project token"
// @Success 101 {string} string "Switching Protocols"
// @Failure 401 {object} response.Resp "Unauthorized"
// @Failure 503 {object} response.Resp "Too many connections"
// @Router /ws/tickets [GET]
func (h *Handler) HandleWebSocket(c *gin.Context) {
	ctx := c.Request.Context()

	sc, hasCredential, err := h.processUpgradeRequest(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade has already written the HTTP error.
		h.l.Warnf(ctx, "internal.websocket.delivery.http.HandleWebSocket.Upgrade: %v", err)
		return
	}

	client := h.newConnection(uuid.NewString(), conn)
	go client.writePump()

	if hasCredential {
		if err := client.authenticate(sc); err != nil {
			h.l.Warnf(ctx, "internal.websocket.delivery.http.HandleWebSocket.Register: %v", err)
			client.closeWith(closeCodeFor(err), err.Error())
			client.cancel()
			return
		}
	} else {
		client.expectAuth(h.cfg.AuthTimeout)
	}

	go client.readPump()
}

// processUpgradeRequest resolves the credential carried by the upgrade
// request, if any. A request without one is still upgraded and must send an
// auth frame; a request with a bad one is refused before the upgrade.
func (h *Handler) processUpgradeRequest(c *gin.Context) (model.Scope, bool, error) {
	if h.cfg.MaxConnections > 0 && h.hub.Stats().ActiveConnections >= h.cfg.MaxConnections {
		return model.Scope{}, false, errUnavailable
	}

	raw := credential.ExtractFromRequest(c.Request)
	if raw == "" {
		return model.Scope{}, false, nil
	}

	sc, err := h.credentials.Resolve(c.Request.Context(), raw)
	if err != nil {
		h.l.Infof(c.Request.Context(), "websocket: handshake rejected: %s", credential.ReasonOf(err))
		return model.Scope{}, false, errUnauthorized
	}
	return sc, true, nil
}
