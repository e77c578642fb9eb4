package http

import (
	"helpdesk-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// List returns the caller's notifications, newest first.
// @Summary List notifications
// @Tags Notification
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param page query int false "Page (default 1)"
// @Param limit query int false "Page size (default 10, max 100)"
// @Param unread query bool false "Only unread"
// @Success 200 {object} listResp
// @Failure 401 {object} response.Resp
// @Failure 403 {object} response.Resp
// @Router /notifications [GET]
func (h *Handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := h.processListRequest(c)
	if err != nil {
		response.ErrorWithMap(c, err, errMap, h.discord)
		return
	}

	o, err := h.uc.List(ctx, sc, req.toInput())
	if err != nil {
		response.ErrorWithMap(c, err, errMap, h.discord)
		return
	}

	response.OK(c, h.newListResp(o))
}

// UnreadCount
// @Summary Count unread notifications
// @Tags Notification
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {object} countResp
// @Router /notifications/unread-count [GET]
func (h *Handler) UnreadCount(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.scope(c)
	if err != nil {
		response.ErrorWithMap(c, err, errMap, h.discord)
		return
	}

	n, err := h.uc.UnreadCount(ctx, sc)
	if err != nil {
		response.ErrorWithMap(c, err, errMap, h.discord)
		return
	}

	response.OK(c, countResp{Count: n})
}

// MarkRead marks the given notifications of the caller as read.
// @Summary Mark notifications read
// @Tags Notification
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param body body markReadReq true "Notification IDs"
// @Success 200 {object} updatedResp
// @Router /notifications/read [PATCH]
func (h *Handler) MarkRead(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ids, err := h.processMarkReadRequest(c)
	if err != nil {
		response.ErrorWithMap(c, err, errMap, h.discord)
		return
	}

	n, err := h.uc.MarkRead(ctx, sc, ids)
	if err != nil {
		response.ErrorWithMap(c, err, errMap, h.discord)
		return
	}

	response.OK(c, updatedResp{Updated: n})
}

// MarkOneRead
// @Summary Mark one notification read
// @Tags Notification
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path int true "Notification ID"
// @Success 200 {object} updatedResp
// @Failure 404 {object} response.Resp
// @Router /notifications/{id}/read [PATCH]
func (h *Handler) MarkOneRead(c *gin.Context) {
	ctx := c.Request.Context()

	sc, id, err := h.processMarkOneReadRequest(c)
	if err != nil {
		response.ErrorWithMap(c, err, errMap, h.discord)
		return
	}

	n, err := h.uc.MarkOneRead(ctx, sc, id)
	if err != nil {
		response.ErrorWithMap(c, err, errMap, h.discord)
		return
	}

	response.OK(c, updatedResp{Updated: n})
}

// MarkAllRead
// @Summary Mark every notification read
// @Tags Notification
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {object} updatedResp
// @Router /notifications/mark-all-read [POST]
func (h *Handler) MarkAllRead(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.scope(c)
	if err != nil {
		response.ErrorWithMap(c, err, errMap, h.discord)
		return
	}

	n, err := h.uc.MarkAllRead(ctx, sc)
	if err != nil {
		response.ErrorWithMap(c, err, errMap, h.discord)
		return
	}

	response.OK(c, updatedResp{Updated: n})
}

// Assigned records the assignment notification of a ticket.
// @Summary Ticket assigned hook
// @Tags Internal
// @Accept json
// @Produce json
// @Param X-Internal-Key header string true "Internal key"
// @Param id path int true "Ticket ID"
// @Param body body assignedReq false "Assignee override"
// @Success 200 {object} notificationResp
// @Router /internal/api/v1/tickets/{id}/assigned [POST]
func (h *Handler) Assigned(c *gin.Context) {
	ctx := c.Request.Context()

	input, err := h.processAssignedRequest(c)
	if err != nil {
		response.ErrorWithMap(c, err, errMap, h.discord)
		return
	}

	n, err := h.uc.NotifyAssignment(ctx, input)
	if err != nil {
		h.l.Warnf(ctx, "internal.notification.delivery.http.Assigned.NotifyAssignment: %v", err)
		response.ErrorWithMap(c, err, errMap, h.discord)
		return
	}

	response.OK(c, newNotificationResp(n))
}
