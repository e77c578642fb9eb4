package rabbitmq

import (
	"helpdesk-srv/internal/notification"
	"helpdesk-srv/pkg/log"
	pkgRabbit "helpdesk-srv/pkg/rabbitmq"
)

// RoutingKeyTicketAssigned is published by the ticket service on every
// (re)assignment.
const RoutingKeyTicketAssigned = "ticket.assigned"

type Consumer struct {
	l  log.Logger
	uc notification.UseCase
}

func New(l log.Logger, uc notification.UseCase) *Consumer {
	return &Consumer{l: l, uc: uc}
}

// Register binds the assignment handler on rc.
func (c *Consumer) Register(rc *pkgRabbit.Consumer, routingKey string) {
	if routingKey == "" {
		routingKey = RoutingKeyTicketAssigned
	}
	rc.Handle(routingKey, c.handleAssigned)
}
