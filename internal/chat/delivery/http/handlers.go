package http

import (
	"helpdesk-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// History returns the full conversation of a ticket, oldest first.
// @Summary Ticket chat history
// @Tags Chat
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path int true "Ticket ID"
// @Success 200 {object} historyResp
// @Failure 400 {object} response.Resp "Wrong param"
// @Failure 401 {object} response.Resp "Unauthorized"
// @Failure 403 {object} response.Resp "Ticket not assigned or not allowed"
// @Failure 404 {object} response.Resp "Ticket not found"
// @Router /tickets/{id}/messages [GET]
func (h *Handler) History(c *gin.Context) {
	ctx := c.Request.Context()

	sc, id, err := h.processHistoryRequest(c)
	if err != nil {
		response.ErrorWithMap(c, err, errMap, h.discord)
		return
	}

	msgs, err := h.uc.History(ctx, sc, id)
	if err != nil {
		h.l.Warnf(ctx, "internal.chat.delivery.http.History: %v", err)
		response.ErrorWithMap(c, err, errMap, h.discord)
		return
	}

	response.OK(c, h.newHistoryResp(id, msgs))
}
