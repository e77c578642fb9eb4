package http

import (
	"helpdesk-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *Handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	tickets := r.Group("/tickets", mw.Auth())
	{
		tickets.GET("/:id/messages", h.History)
	}
}
