package redis

import (
	"context"
	"crypto/tls"
	"fmt"

	goredis "github.com/redis/go-redis/v9"
)

// New dials Redis and verifies the connection with a ping.
func New(cfg RedisConfig) (IRedis, error) {
	addr, err := cfg.addr()
	if err != nil {
		return nil, err
	}

	opts := &goredis.Options{
		Addr:            addr,
		Password:        cfg.Password,
		DB:              cfg.DB,
		MaxRetries:      cfg.MaxRetries,
		MinIdleConns:    cfg.MinIdleConns,
		PoolSize:        cfg.PoolSize,
		PoolTimeout:     cfg.PoolTimeout,
		ConnMaxIdleTime: cfg.ConnMaxIdleTime,
		ConnMaxLifetime: cfg.ConnMaxLifetime,
	}
	if cfg.UseTLS {
		opts.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}
	client := goredis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisImpl{client: client}, nil
}

// NewFromClient wraps a client whose lifecycle the caller owns.
func NewFromClient(client *goredis.Client) IRedis {
	return &redisImpl{client: client}
}

func (r *redisImpl) Publish(ctx context.Context, channel string, message any) error {
	if channel == "" {
		return ErrEmptyChannel
	}
	return r.client.Publish(ctx, channel, message).Err()
}

func (r *redisImpl) PSubscribe(ctx context.Context, patterns ...string) *goredis.PubSub {
	return r.client.PSubscribe(ctx, patterns...)
}

func (r *redisImpl) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *redisImpl) Close() error {
	return r.client.Close()
}

func (r *redisImpl) GetClient() *goredis.Client {
	return r.client
}
