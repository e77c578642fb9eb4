package httpserver

import (
	"database/sql"
	"errors"

	"github.com/gin-gonic/gin"
	amqp "github.com/rabbitmq/amqp091-go"

	"helpdesk-srv/config"
	ws "helpdesk-srv/internal/websocket"
	wsRedis "helpdesk-srv/internal/websocket/delivery/redis"
	"helpdesk-srv/pkg/discord"
	"helpdesk-srv/pkg/jwt"
	"helpdesk-srv/pkg/log"
	pkgMinio "helpdesk-srv/pkg/minio"
	pkgRabbit "helpdesk-srv/pkg/rabbitmq"
	pkgRedis "helpdesk-srv/pkg/redis"
)

// HTTPServer represents the HTTP server with all dependencies.
// New() only wires dependencies and validates them.
// Run() (in httpserver.go) is responsible for starting background services and HTTP serving.
type HTTPServer struct {
	// Server configuration
	gin            *gin.Engine
	l              log.Logger
	host           string
	port           int
	mode           string
	allowedOrigins []string

	// Database
	postgresDB *sql.DB

	// Realtime
	hub          ws.UseCase
	wsSubscriber wsRedis.Subscriber
	wsConfig     config.WebSocketConfig
	rateLimit    config.RateLimitConfig
	notification config.NotificationConfig

	// Messaging
	amqpConn  *amqp.Connection
	rabbitCfg config.RabbitMQConfig
	consumer  *pkgRabbit.Consumer

	// Storage
	minio             pkgMinio.MinIO
	verifyAttachments bool

	// Auth & security
	jwtManager  jwt.Manager
	internalKey string

	// External services
	redis              pkgRedis.IRedis
	redisChannelPrefix string
	discord            discord.IDiscord
}

// Config is the constructor input for HTTPServer.
type Config struct {
	// Server configuration
	Host           string
	Port           int
	Mode           string
	AllowedOrigins []string

	// Database Configuration
	PostgresDB *sql.DB

	// Realtime Configuration
	WebSocket    config.WebSocketConfig
	RateLimit    config.RateLimitConfig
	Notification config.NotificationConfig

	// Messaging Configuration. A nil connection disables the consumer.
	AMQPConn *amqp.Connection
	RabbitMQ config.RabbitMQConfig

	// Storage Configuration. MinIO may be nil.
	MinIO             pkgMinio.MinIO
	VerifyAttachments bool

	// Authentication & Security Configuration
	JWTManager  jwt.Manager
	InternalKey string

	// External services
	Redis              pkgRedis.IRedis
	RedisChannelPrefix string
	Discord            discord.IDiscord
}

// New creates a new HTTPServer instance with the provided configuration.
// Note: This does NOT start any goroutines. Use (*HTTPServer).Run() to start the service.
func New(l log.Logger, cfg Config) (*HTTPServer, error) {
	if cfg.Mode != "" {
		gin.SetMode(cfg.Mode)
	}

	srv := &HTTPServer{
		gin:            gin.New(),
		l:              l,
		host:           cfg.Host,
		port:           cfg.Port,
		mode:           cfg.Mode,
		allowedOrigins: cfg.AllowedOrigins,

		postgresDB: cfg.PostgresDB,

		wsConfig:     cfg.WebSocket,
		rateLimit:    cfg.RateLimit,
		notification: cfg.Notification,

		amqpConn:  cfg.AMQPConn,
		rabbitCfg: cfg.RabbitMQ,

		minio:             cfg.MinIO,
		verifyAttachments: cfg.VerifyAttachments,

		jwtManager:  cfg.JWTManager,
		internalKey: cfg.InternalKey,

		redis:              cfg.Redis,
		redisChannelPrefix: cfg.RedisChannelPrefix,
		discord:            cfg.Discord,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

// validate ensures all required dependencies are provided.
func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.postgresDB == nil {
		return errors.New("postgresDB is required")
	}
	if srv.redis == nil {
		return errors.New("redis is required")
	}
	if srv.jwtManager == nil {
		return errors.New("jwtManager is required")
	}
	if srv.verifyAttachments && srv.minio == nil {
		return errors.New("minio is required when attachments are verified")
	}
	return nil
}
