package main

import (
	"context"
	"fmt"

	"helpdesk-srv/config"
	"helpdesk-srv/config/minio"
	"helpdesk-srv/config/postgre"
	"helpdesk-srv/config/rabbitmq"
	"helpdesk-srv/config/redis"
	"helpdesk-srv/internal/httpserver"
	"helpdesk-srv/pkg/discord"
	"helpdesk-srv/pkg/jwt"
	"helpdesk-srv/pkg/log"
)

// @title       Helpdesk Service
// @description Ticket chat over websockets and presence-aware notifications.
// @version     1.0
// @host        localhost:8080
// @schemes     http ws
// @BasePath    /
//
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Bearer token authentication. Format: "Bearer {token}"
//
// @securityDefinitions.apikey InternalKey
// @in header
// @name X-Internal-Key
func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config:", err)
		return
	}

	// Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
		Service:      "helpdesk-srv",
	})

	ctx := context.Background()

	// Initialize PostgreSQL
	postgresDB, err := postgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		logger.Error(ctx, "Failed to connect to PostgreSQL: ", err)
		return
	}
	defer postgre.Disconnect(postgresDB)
	logger.Infof(ctx, "PostgreSQL connected successfully to %s:%d/%s", cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.DBName)

	// Initialize Redis
	redisClient, err := redis.Connect(cfg.Redis)
	if err != nil {
		logger.Error(ctx, "Failed to connect to Redis: ", err)
		return
	}
	defer redisClient.Close()
	logger.Infof(ctx, "Redis connected successfully to %s:%d", cfg.Redis.Host, cfg.Redis.Port)

	// Initialize MinIO (optional)
	minioClient, err := minio.Connect(ctx, cfg.MinIO)
	if err != nil {
		logger.Error(ctx, "Failed to connect to MinIO: ", err)
		return
	}
	if minioClient != nil {
		defer minioClient.Close()
		logger.Infof(ctx, "MinIO connected successfully to %s", cfg.MinIO.Endpoint)
	}

	// Initialize RabbitMQ (optional)
	amqpConn, err := rabbitmq.Connect(ctx, logger, cfg.RabbitMQ)
	if err != nil {
		logger.Error(ctx, "Failed to connect to RabbitMQ: ", err)
		return
	}
	if amqpConn != nil {
		defer amqpConn.Close()
		logger.Info(ctx, "RabbitMQ connected successfully")
	}

	// Initialize Discord (optional)
	var discordClient discord.IDiscord
	if cfg.Discord.WebhookID != "" {
		discordClient, err = discord.New(logger, discord.Webhook{
			ID:    cfg.Discord.WebhookID,
			Token: cfg.Discord.WebhookToken,
		})
		if err != nil {
			logger.Error(ctx, "Failed to initialize Discord: ", err)
			return
		}
		defer discordClient.Close()
	}

	// Initialize JWT manager
	jwtManager, err := jwt.New(jwt.Config{
		SecretKey: cfg.JWT.SecretKey,
		Issuer:    cfg.JWT.Issuer,
		TTL:       cfg.JWT.TTL,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize JWT manager: ", err)
		return
	}

	// Initialize HTTP server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		// Server Configuration
		Host:           cfg.Server.Host,
		Port:           cfg.Server.Port,
		Mode:           cfg.Server.Mode,
		AllowedOrigins: cfg.Server.AllowedOrigins,

		// Database Configuration
		PostgresDB: postgresDB,

		// Realtime Configuration
		WebSocket:    cfg.WebSocket,
		RateLimit:    cfg.RateLimit,
		Notification: cfg.Notification,

		// Messaging Configuration
		AMQPConn: amqpConn,
		RabbitMQ: cfg.RabbitMQ,

		// Storage Configuration
		MinIO:             minioClient,
		VerifyAttachments: cfg.MinIO.VerifyAttachments,

		// Authentication & Security Configuration
		JWTManager:  jwtManager,
		InternalKey: cfg.Internal.Key,

		// External services
		Redis:              redisClient,
		RedisChannelPrefix: cfg.Redis.NotificationChannelPrefix,
		Discord:            discordClient,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}
}
