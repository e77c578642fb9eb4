package httpserver

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	// Import this to execute the init function in docs.go which setups the Swagger docs.
	_ "helpdesk-srv/docs"

	chatHTTP "helpdesk-srv/internal/chat/delivery/http"
	chatRepo "helpdesk-srv/internal/chat/repository/postgre"
	chatUC "helpdesk-srv/internal/chat/usecase"
	credentialUC "helpdesk-srv/internal/credential/usecase"
	"helpdesk-srv/internal/middleware"
	notifHTTP "helpdesk-srv/internal/notification/delivery/http"
	notifRabbit "helpdesk-srv/internal/notification/delivery/rabbitmq"
	notifRepo "helpdesk-srv/internal/notification/repository/postgre"
	notifUC "helpdesk-srv/internal/notification/usecase"
	projectRepo "helpdesk-srv/internal/project/repository/postgre"
	ticketRepo "helpdesk-srv/internal/ticket/repository/postgre"
	wsHTTP "helpdesk-srv/internal/websocket/delivery/http"
	wsRedis "helpdesk-srv/internal/websocket/delivery/redis"
	wsUC "helpdesk-srv/internal/websocket/usecase"
	"helpdesk-srv/pkg/metrics"
	pkgRabbit "helpdesk-srv/pkg/rabbitmq"
)

const (
	Api         = "/api/v1"
	InternalApi = "/internal/api/v1"

	DefaultWSPath = "/ws/tickets"
)

func (srv *HTTPServer) mapHandlers(ctx context.Context) error {
	metrics.Init()

	// Repositories
	projects := projectRepo.New(srv.l, srv.postgresDB)
	tickets := ticketRepo.New(srv.l, srv.postgresDB)
	messages := chatRepo.New(srv.l, srv.postgresDB)
	notifications := notifRepo.New(srv.l, srv.postgresDB)

	// Usecases. The hub comes first: chat uses it as rooms, notification
	// as presence.
	hub := wsUC.New(srv.l, srv.wsConfig.MaxConnections)
	srv.hub = hub

	credentials := credentialUC.New(srv.l, srv.jwtManager, projects)
	pusher := wsRedis.NewPublisher(srv.redis, srv.redisChannelPrefix)
	notificationUC := notifUC.New(srv.l, notifications, tickets, hub, pusher, notifUC.Config{
		SnippetLength: srv.notification.SnippetLength,
		PushTimeout:   srv.notification.PushTimeout,
	})
	chatUseCase := chatUC.New(srv.l, tickets, messages, hub, notificationUC, srv.minio, chatUC.Options{
		VerifyAttachments: srv.verifyAttachments,
	})

	// Middleware
	mw := middleware.New(srv.l, credentials, srv.internalKey, srv.discord)
	srv.gin.Use(mw.Recovery(), middleware.Metrics(), middleware.CORS(middleware.DefaultCORSConfig(srv.allowedOrigins)))

	// Health check endpoints (no auth required)
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)
	srv.gin.GET("/metrics", gin.WrapH(metrics.Handler()))

	// Swagger UI
	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Websocket
	wsHandler := wsHTTP.New(srv.l, hub, chatUseCase, credentials, srv.discord, wsHTTP.Config{
		PingInterval:    srv.wsConfig.PingInterval,
		PongWait:        srv.wsConfig.PongWait,
		WriteWait:       srv.wsConfig.WriteWait,
		AuthTimeout:     srv.wsConfig.AuthTimeout,
		MaxMessageSize:  srv.wsConfig.MaxMessageSize,
		ReadBufferSize:  srv.wsConfig.ReadBufferSize,
		WriteBufferSize: srv.wsConfig.WriteBufferSize,
		SendBufferSize:  srv.wsConfig.SendBufferSize,
		MaxConnections:  srv.wsConfig.MaxConnections,
		AllowedOrigins:  srv.allowedOrigins,
		FramesPerSecond: srv.rateLimit.FramesPerSecond,
		Burst:           srv.rateLimit.Burst,
	})
	wsPath := srv.wsConfig.Path
	if wsPath == "" {
		wsPath = DefaultWSPath
	}
	wsHandler.RegisterRoutes(srv.gin, wsPath)
	srv.wsSubscriber = wsRedis.NewSubscriber(srv.redis, hub, srv.l, srv.redisChannelPrefix)

	// API routes
	api := srv.gin.Group(Api)
	notificationHandler := notifHTTP.New(srv.l, notificationUC, srv.discord)
	notificationHandler.RegisterRoutes(api, mw)
	chatHTTP.New(srv.l, chatUseCase, srv.discord).RegisterRoutes(api, mw)

	internal := srv.gin.Group(InternalApi)
	notificationHandler.RegisterInternalRoutes(internal, mw)

	// Assignment events
	if srv.amqpConn != nil {
		consumer, err := pkgRabbit.NewConsumer(srv.l, srv.amqpConn, pkgRabbit.ConsumerOptions{
			Exchange:       srv.rabbitCfg.Exchange,
			Queue:          srv.rabbitCfg.Queue,
			Prefetch:       srv.rabbitCfg.Prefetch,
			Workers:        srv.rabbitCfg.Workers,
			HandlerTimeout: srv.rabbitCfg.HandlerTimeout,
		})
		if err != nil {
			return fmt.Errorf("rabbitmq consumer: %w", err)
		}
		notifRabbit.New(srv.l, notificationUC).Register(consumer, srv.rabbitCfg.RoutingKey)
		srv.consumer = consumer
	} else {
		srv.l.Warn(ctx, "RabbitMQ not configured, assignment events are only accepted on the internal route")
	}

	return nil
}
