package http

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the socket endpoint. It carries no auth middleware:
// browsers cannot set headers on the upgrade, so the credential is resolved
// in the handler or from the first frame.
func (h *Handler) RegisterRoutes(r gin.IRoutes, path string) {
	r.GET(path, h.HandleWebSocket)
}
