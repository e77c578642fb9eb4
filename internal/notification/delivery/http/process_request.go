package http

import (
	"strconv"

	"helpdesk-srv/internal/model"
	"helpdesk-srv/internal/notification"

	"github.com/gin-gonic/gin"
)

func (h *Handler) scope(c *gin.Context) (model.Scope, error) {
	sc, ok := model.GetScopeFromContext(c.Request.Context())
	if !ok {
		h.l.Errorf(c.Request.Context(), "internal.notification.delivery.http.scope: missing scope")
		return model.Scope{}, notification.ErrForbidden
	}
	return sc, nil
}

func (h *Handler) processListRequest(c *gin.Context) (model.Scope, listReq, error) {
	sc, err := h.scope(c)
	if err != nil {
		return model.Scope{}, listReq{}, err
	}

	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "internal.notification.delivery.http.processListRequest.ShouldBindQuery: %v", err)
		return model.Scope{}, listReq{}, notification.ErrInvalidRequest
	}
	req.PaginateQuery.Adjust()
	return sc, req, nil
}

func (h *Handler) processMarkReadRequest(c *gin.Context) (model.Scope, []int64, error) {
	sc, err := h.scope(c)
	if err != nil {
		return model.Scope{}, nil, err
	}

	var req markReadReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "internal.notification.delivery.http.processMarkReadRequest.ShouldBindJSON: %v", err)
		return model.Scope{}, nil, errWrongBody
	}
	if verr := req.validate(); verr.HasError() {
		return model.Scope{}, nil, verr
	}
	return sc, req.IDs, nil
}

func (h *Handler) processMarkOneReadRequest(c *gin.Context) (model.Scope, int64, error) {
	sc, err := h.scope(c)
	if err != nil {
		return model.Scope{}, 0, err
	}
	id, err := parseID(c)
	if err != nil {
		return model.Scope{}, 0, err
	}
	return sc, id, nil
}

func (h *Handler) processAssignedRequest(c *gin.Context) (notification.AssignmentInput, error) {
	id, err := parseID(c)
	if err != nil {
		return notification.AssignmentInput{}, err
	}

	var req assignedReq
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			h.l.Warnf(c.Request.Context(), "internal.notification.delivery.http.processAssignedRequest.ShouldBindJSON: %v", err)
			return notification.AssignmentInput{}, errWrongBody
		}
	}
	return notification.AssignmentInput{TicketID: id, AssigneeID: req.AssigneeID}, nil
}

func parseID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, notification.ErrInvalidRequest
	}
	return id, nil
}
