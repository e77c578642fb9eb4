package http

import (
	"strconv"

	"helpdesk-srv/internal/chat"
	"helpdesk-srv/internal/model"

	"github.com/gin-gonic/gin"
)

func (h *Handler) processHistoryRequest(c *gin.Context) (model.Scope, int64, error) {
	ctx := c.Request.Context()

	sc, ok := model.GetScopeFromContext(ctx)
	if !ok {
		h.l.Errorf(ctx, "internal.chat.delivery.http.processHistoryRequest: missing scope")
		return model.Scope{}, 0, chat.ErrNotAllowed
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		h.l.Warnf(ctx, "internal.chat.delivery.http.processHistoryRequest.ParseInt: %q", c.Param("id"))
		return model.Scope{}, 0, chat.ErrInvalidRequest
	}

	return sc, id, nil
}
