package redis

import (
	"context"

	goredis "github.com/redis/go-redis/v9"
)

type IRedis interface {
	Publish(ctx context.Context, channel string, message any) error
	PSubscribe(ctx context.Context, patterns ...string) *goredis.PubSub
	Ping(ctx context.Context) error
	Close() error
	GetClient() *goredis.Client
}
