package rabbitmq

import (
	"context"
	"errors"
	"sync"
	"time"

	"helpdesk-srv/pkg/log"

	amqp "github.com/rabbitmq/amqp091-go"
)

// ErrPermanent marks a delivery that must not be redelivered.
var ErrPermanent = errors.New("rabbitmq: permanent failure")

// Handler processes one delivery. Returning nil acks it; an error wrapping
// ErrPermanent rejects it; any other error requeues it.
type Handler func(ctx context.Context, d amqp.Delivery) error

type ConsumerOptions struct {
	Exchange       string
	Queue          string
	Prefetch       int
	Workers        int
	HandlerTimeout time.Duration
}

// Consumer fans deliveries of a topic exchange queue out to a worker pool.
type Consumer struct {
	l        log.Logger
	ch       *amqp.Channel
	opts     ConsumerOptions
	handlers map[string]Handler

	deliveries chan amqp.Delivery
	done       chan struct{}
	wg         sync.WaitGroup
	startOnce  sync.Once
	closeOnce  sync.Once
}

func NewConsumer(l log.Logger, conn *amqp.Connection, opts ConsumerOptions) (*Consumer, error) {
	if opts.Workers < 1 {
		opts.Workers = 1
	}
	if opts.Prefetch < 1 {
		opts.Prefetch = 10
	}
	if opts.HandlerTimeout <= 0 {
		opts.HandlerTimeout = 10 * time.Second
	}

	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}
	if err := ch.ExchangeDeclare(opts.Exchange, "topic", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		return nil, err
	}

	return &Consumer{
		l:          l,
		ch:         ch,
		opts:       opts,
		handlers:   make(map[string]Handler),
		deliveries: make(chan amqp.Delivery, opts.Prefetch),
		done:       make(chan struct{}),
	}, nil
}

// Handle binds routingKey to h. Must be called before Start.
func (c *Consumer) Handle(routingKey string, h Handler) {
	c.handlers[routingKey] = h
}

func (c *Consumer) Start(ctx context.Context) error {
	var startErr error
	c.startOnce.Do(func() {
		startErr = c.setupQueue()
		if startErr != nil {
			return
		}
		for i := 0; i < c.opts.Workers; i++ {
			c.wg.Add(1)
			go c.worker()
		}
		c.l.Infof(ctx, "pkg.rabbitmq.Consumer.Start: consuming %s with %d workers", c.opts.Queue, c.opts.Workers)
	})
	return startErr
}

func (c *Consumer) setupQueue() error {
	if err := c.ch.Qos(c.opts.Prefetch, 0, false); err != nil {
		return err
	}
	q, err := c.ch.QueueDeclare(c.opts.Queue, true, false, false, false, nil)
	if err != nil {
		return err
	}
	for key := range c.handlers {
		if err := c.ch.QueueBind(q.Name, key, c.opts.Exchange, false, nil); err != nil {
			return err
		}
	}
	msgs, err := c.ch.Consume(q.Name, "", false, false, false, false, nil)
	if err != nil {
		return err
	}

	go func() {
		defer close(c.deliveries)
		for {
			select {
			case <-c.done:
				return
			case msg, ok := <-msgs:
				if !ok {
					return
				}
				c.deliveries <- msg
			}
		}
	}()
	return nil
}

func (c *Consumer) worker() {
	defer c.wg.Done()
	for msg := range c.deliveries {
		c.dispatch(msg)
	}
}

func (c *Consumer) dispatch(msg amqp.Delivery) {
	ctx := log.WithFields(context.Background(), "routing_key", msg.RoutingKey, "message_id", msg.MessageId)
	h, ok := c.handlers[msg.RoutingKey]
	if !ok {
		c.l.Warnf(ctx, "pkg.rabbitmq.Consumer.dispatch: no handler bound")
		_ = msg.Nack(false, false)
		return
	}

	hctx, cancel := context.WithTimeout(ctx, c.opts.HandlerTimeout)
	err := h(hctx, msg)
	cancel()

	switch {
	case err == nil:
		_ = msg.Ack(false)
	case errors.Is(err, ErrPermanent):
		c.l.Errorf(ctx, "pkg.rabbitmq.Consumer.dispatch: dropping delivery: %v", err)
		_ = msg.Nack(false, false)
	default:
		c.l.Warnf(ctx, "pkg.rabbitmq.Consumer.dispatch: requeueing delivery: %v", err)
		_ = msg.Nack(false, true)
	}
}

func (c *Consumer) Close() error {
	var err error
	c.closeOnce.Do(func() {
		close(c.done)
		err = c.ch.Close()
		c.wg.Wait()
	})
	return err
}
