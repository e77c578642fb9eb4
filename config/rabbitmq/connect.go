package rabbitmq

import (
	"context"

	"helpdesk-srv/config"
	"helpdesk-srv/pkg/log"
	pkgRabbit "helpdesk-srv/pkg/rabbitmq"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Connect dials RabbitMQ. It returns nil, nil when no URL is configured.
func Connect(ctx context.Context, l log.Logger, cfg config.RabbitMQConfig) (*amqp.Connection, error) {
	if cfg.URL == "" {
		return nil, nil
	}
	return pkgRabbit.DialWithRetry(ctx, l, pkgRabbit.ConnectionOptions{
		URL:           cfg.URL,
		RetryAttempts: cfg.RetryAttempts,
		Delay:         cfg.RetryDelay,
	})
}
