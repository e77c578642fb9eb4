package redis

import (
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// pingTimeout bounds the startup ping in New.
const pingTimeout = 5 * time.Second

var (
	ErrHostRequired = errors.New("redis: host is required")
	ErrInvalidPort  = errors.New("redis: invalid port")
	ErrEmptyChannel = errors.New("redis: empty channel")
)

// RedisConfig carries connection and pool settings. Zero pool values keep
// the go-redis defaults.
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	UseTLS   bool

	MaxRetries      int
	MinIdleConns    int
	PoolSize        int
	PoolTimeout     time.Duration
	ConnMaxIdleTime time.Duration
	ConnMaxLifetime time.Duration
}

func (c RedisConfig) addr() (string, error) {
	if c.Host == "" {
		return "", ErrHostRequired
	}
	if c.Port <= 0 || c.Port > 65535 {
		return "", ErrInvalidPort
	}
	return fmt.Sprintf("%s:%d", c.Host, c.Port), nil
}

type redisImpl struct {
	client *goredis.Client
}
