package redis

import (
	"helpdesk-srv/config"
	pkgRedis "helpdesk-srv/pkg/redis"
)

// Connect builds the Redis client from the service config.
func Connect(cfg config.RedisConfig) (pkgRedis.IRedis, error) {
	return pkgRedis.New(pkgRedis.RedisConfig{
		Host:            cfg.Host,
		Port:            cfg.Port,
		Password:        cfg.Password,
		DB:              cfg.DB,
		UseTLS:          cfg.UseTLS,
		MaxRetries:      cfg.MaxRetries,
		MinIdleConns:    cfg.MinIdleConns,
		PoolSize:        cfg.PoolSize,
		PoolTimeout:     cfg.PoolTimeout,
		ConnMaxIdleTime: cfg.ConnMaxIdleTime,
		ConnMaxLifetime: cfg.ConnMaxLifetime,
	})
}
