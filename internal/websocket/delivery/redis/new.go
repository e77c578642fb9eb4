package redis

import (
	"context"
	"sync"

	"github.com/redis/go-redis/v9"

	"helpdesk-srv/internal/notification"
	ws "helpdesk-srv/internal/websocket"
	"helpdesk-srv/pkg/log"
	pkgRedis "helpdesk-srv/pkg/redis"
)

// DefaultChannelPrefix namespaces per-subject notification channels.
const DefaultChannelPrefix = "notification:user:"

type Subscriber interface {
	Start(ctx context.Context) error
	Shutdown(ctx context.Context) error
}

// publisher fans pushes out through Redis so that every instance delivers
// them to its own sockets.
type publisher struct {
	redis  pkgRedis.IRedis
	prefix string
}

var _ notification.Pusher = &publisher{}

func NewPublisher(r pkgRedis.IRedis, prefix string) notification.Pusher {
	if prefix == "" {
		prefix = DefaultChannelPrefix
	}
	return &publisher{redis: r, prefix: prefix}
}

type subscriber struct {
	redis  pkgRedis.IRedis
	hub    ws.UseCase
	logger log.Logger
	prefix string

	pubsub *redis.PubSub
	wg     sync.WaitGroup
	quit   chan struct{}
}

func NewSubscriber(r pkgRedis.IRedis, hub ws.UseCase, logger log.Logger, prefix string) Subscriber {
	if prefix == "" {
		prefix = DefaultChannelPrefix
	}
	return &subscriber{
		redis:  r,
		hub:    hub,
		logger: logger,
		prefix: prefix,
		quit:   make(chan struct{}),
	}
}
