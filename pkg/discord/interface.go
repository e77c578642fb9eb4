package discord

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"helpdesk-srv/pkg/log"
)

var errWebhookRequired = errors.New("discord: webhook id and token are required")

// IDiscord posts operational reports to a Discord webhook.
type IDiscord interface {
	ReportBug(ctx context.Context, message string) error
	SendError(ctx context.Context, title, description string, err error) error
	Close() error
}

// New builds a webhook client. Options may override transport settings.
func New(l log.Logger, webhook Webhook, opts ...Option) (IDiscord, error) {
	webhook.ID = strings.TrimSpace(webhook.ID)
	webhook.Token = strings.TrimSpace(webhook.Token)
	if webhook.ID == "" || webhook.Token == "" {
		return nil, errWebhookRequired
	}

	cfg := Config{
		BaseURL:    defaultBaseURL,
		Timeout:    DefaultTimeout,
		RetryCount: DefaultRetryCount,
		RetryDelay: DefaultRetryDelay,
		Username:   DefaultUsername,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &implDiscord{
		l:       l,
		webhook: webhook,
		cfg:     cfg,
		client:  &http.Client{Timeout: cfg.Timeout},
	}, nil
}
