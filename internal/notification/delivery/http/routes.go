package http

import (
	"helpdesk-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *Handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	n := r.Group("/notifications", mw.Auth(), mw.RequireUser())
	{
		n.GET("", h.List)
		n.GET("/unread-count", h.UnreadCount)
		n.PATCH("/read", h.MarkRead)
		n.PATCH("/:id/read", h.MarkOneRead)
		n.POST("/mark-all-read", h.MarkAllRead)
	}
}

// RegisterInternalRoutes exposes the assignment hook to services that
// cannot publish ticket events.
func (h *Handler) RegisterInternalRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	t := r.Group("/tickets", mw.InternalAuth())
	{
		t.POST("/:id/assigned", h.Assigned)
	}
}
