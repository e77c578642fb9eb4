package rabbitmq

import (
	"context"
	"fmt"
	"time"

	"helpdesk-srv/pkg/log"

	amqp "github.com/rabbitmq/amqp091-go"
)

const maxDialDelay = 30 * time.Second

type ConnectionOptions struct {
	URL           string
	RetryAttempts int
	Delay         time.Duration
}

// DialWithRetry connects with exponential backoff, giving up when ctx ends
// or the attempts run out.
func DialWithRetry(ctx context.Context, l log.Logger, opts ConnectionOptions) (*amqp.Connection, error) {
	if opts.RetryAttempts < 1 {
		opts.RetryAttempts = 1
	}
	if opts.Delay <= 0 {
		opts.Delay = time.Second
	}

	var lastErr error
	delay := opts.Delay
	for attempt := 1; attempt <= opts.RetryAttempts; attempt++ {
		conn, err := amqp.Dial(opts.URL)
		if err == nil {
			if attempt > 1 {
				l.Infof(ctx, "pkg.rabbitmq.DialWithRetry: connected on attempt %d", attempt)
			}
			return conn, nil
		}
		lastErr = err
		if attempt == opts.RetryAttempts {
			break
		}

		l.Warnf(ctx, "pkg.rabbitmq.DialWithRetry: attempt %d failed, retrying in %s: %v", attempt, delay, err)
		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, fmt.Errorf("rabbitmq dial cancelled: %w", ctx.Err())
		case <-timer.C:
		}
		delay *= 2
		if delay > maxDialDelay {
			delay = maxDialDelay
		}
	}

	return nil, fmt.Errorf("failed to connect to RabbitMQ after %d attempts: %w", opts.RetryAttempts, lastErr)
}
