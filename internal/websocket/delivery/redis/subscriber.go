package redis

import (
	"context"
	"fmt"
)

func (s *subscriber) Start(ctx context.Context) error {
	pattern := s.prefix + "*"
	s.pubsub = s.redis.PSubscribe(ctx, pattern)

	// Wait for confirmation that subscription is created
	if _, err := s.pubsub.Receive(ctx); err != nil {
		_ = s.pubsub.Close()
		return fmt.Errorf("failed to subscribe: %w", err)
	}

	s.wg.Add(1)
	go s.listen(context.WithoutCancel(ctx))

	s.logger.Infof(ctx, "Redis subscriber started on pattern: %s", pattern)
	return nil
}

func (s *subscriber) listen(ctx context.Context) {
	defer s.wg.Done()

	ch := s.pubsub.Channel()

	for {
		select {
		case msg, ok := <-ch:
			if !ok {
				s.logger.Warnf(ctx, "redis pubsub channel closed")
				return
			}
			s.handleMessage(ctx, msg.Channel, msg.Payload)
		case <-s.quit:
			return
		}
	}
}

func (s *subscriber) Shutdown(ctx context.Context) error {
	close(s.quit)
	if s.pubsub != nil {
		if err := s.pubsub.Close(); err != nil {
			s.logger.Errorf(ctx, "internal.websocket.delivery.redis.Shutdown: %v", err)
		}
	}
	s.wg.Wait()
	s.logger.Infof(ctx, "Redis subscriber stopped")
	return nil
}
