package middleware

import (
	"crypto/subtle"

	"helpdesk-srv/internal/credential"
	"helpdesk-srv/internal/model"
	"helpdesk-srv/pkg/log"
	"helpdesk-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

const InternalKeyHeader = "X-Internal-Key"

var authMessages = map[string]string{
	credential.ReasonMissing:          "Missing credential",
	credential.ReasonExpired:          "Token expired",
	credential.ReasonInvalidSignature: "Invalid token signature",
	credential.ReasonUnknown:          "Unknown credential",
}

// Auth resolves the request credential and stores the identity claim in
// the request context.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		raw := credential.ExtractFromRequest(c.Request)

		sc, err := m.credentials.Resolve(ctx, raw)
		if err != nil {
			reason := credential.ReasonOf(err)
			m.l.Warnf(ctx, "internal.middleware.Auth.Resolve: %s | Path: %s", reason, c.Request.URL.Path)
			response.Unauthorized(c, authMessages[reason])
			c.Abort()
			return
		}

		ctx = model.SetScopeToContext(ctx, sc)
		ctx = log.WithFields(ctx, "subject", sc.SubjectID())
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// RequireUser rejects project-scoped claims. Must run after Auth.
func (m Middleware) RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		sc, ok := model.GetScopeFromContext(c.Request.Context())
		if !ok || !sc.IsUser() {
			response.Forbidden(c)
			c.Abort()
			return
		}
		c.Next()
	}
}

// InternalAuth guards service-to-service routes with a shared key.
func (m Middleware) InternalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader(InternalKeyHeader)
		if m.internalKey == "" || subtle.ConstantTimeCompare([]byte(key), []byte(m.internalKey)) != 1 {
			m.l.Warnf(c.Request.Context(), "internal.middleware.InternalAuth: rejected | Path: %s", c.Request.URL.Path)
			response.Unauthorized(c, "Invalid internal key")
			c.Abort()
			return
		}
		c.Next()
	}
}
