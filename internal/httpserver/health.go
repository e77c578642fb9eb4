package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"helpdesk-srv/pkg/errors"
	"helpdesk-srv/pkg/response"
)

const (
	serviceName = "helpdesk-srv"
	version     = "1.0.0"
)

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check that the service and its stores are reachable
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "Service is healthy"
// @Failure 503 {object} response.Resp "A dependency is down"
// @Router /health [get]
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	ctx := c.Request.Context()

	if err := srv.postgresDB.PingContext(ctx); err != nil {
		srv.l.Warnf(ctx, "internal.httpserver.healthCheck.Postgres: %v", err)
		response.Error(c, errors.NewHTTPError(http.StatusServiceUnavailable, "PostgreSQL connection failed", http.StatusServiceUnavailable), nil)
		return
	}
	if err := srv.redis.Ping(ctx); err != nil {
		srv.l.Warnf(ctx, "internal.httpserver.healthCheck.Redis: %v", err)
		response.Error(c, errors.NewHTTPError(http.StatusServiceUnavailable, "Redis connection failed", http.StatusServiceUnavailable), nil)
		return
	}

	stats := srv.hub.Stats()
	response.OK(c, gin.H{
		"status":             "healthy",
		"service":            serviceName,
		"version":            version,
		"active_connections": stats.ActiveConnections,
		"unique_subjects":    stats.UniqueSubjects,
		"rooms":              stats.Rooms,
		"postgres":           "connected",
		"redis":              "connected",
	})
}

// readyCheck handles readiness check requests
// @Summary Readiness Check
// @Description Check if the service is ready to serve traffic
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "Service is ready"
// @Failure 503 {object} response.Resp "Service is not ready"
// @Router /ready [get]
func (srv *HTTPServer) readyCheck(c *gin.Context) {
	ctx := c.Request.Context()

	if err := srv.redis.Ping(ctx); err != nil {
		response.Error(c, errors.NewHTTPError(http.StatusServiceUnavailable, "Redis connection not available", http.StatusServiceUnavailable), nil)
		return
	}
	if srv.minio != nil {
		if err := srv.minio.HealthCheck(ctx); err != nil {
			response.Error(c, errors.NewHTTPError(http.StatusServiceUnavailable, "MinIO not available", http.StatusServiceUnavailable), nil)
			return
		}
	}

	response.OK(c, gin.H{
		"status":  "ready",
		"service": serviceName,
		"version": version,
	})
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the service is alive
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "Service is alive"
// @Router /live [get]
func (srv *HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"service": serviceName,
		"version": version,
	})
}
