package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"helpdesk-srv/internal/notification"
	pkgRabbit "helpdesk-srv/pkg/rabbitmq"

	amqp "github.com/rabbitmq/amqp091-go"
)

func (c *Consumer) handleAssigned(ctx context.Context, d amqp.Delivery) error {
	var evt assignedEvent
	if err := json.Unmarshal(d.Body, &evt); err != nil {
		return fmt.Errorf("%w: decode: %v", pkgRabbit.ErrPermanent, err)
	}

	n, err := c.uc.NotifyAssignment(ctx, evt.toInput())
	if err != nil {
		if errors.Is(err, notification.ErrInvalidRequest) ||
			errors.Is(err, notification.ErrTicketNotFound) ||
			errors.Is(err, notification.ErrTicketNotAssigned) {
			return fmt.Errorf("%w: %v", pkgRabbit.ErrPermanent, err)
		}
		c.l.Errorf(ctx, "internal.notification.delivery.rabbitmq.handleAssigned.NotifyAssignment: %v", err)
		return err
	}

	c.l.Debugf(ctx, "internal.notification.delivery.rabbitmq.handleAssigned: notification %d for %s", n.ID, n.TargetID)
	return nil
}
