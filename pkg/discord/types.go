package discord

import (
	"net/http"
	"time"

	"helpdesk-srv/pkg/log"
)

// Webhook identifies a Discord webhook.
type Webhook struct {
	ID    string
	Token string
}

type Config struct {
	BaseURL    string
	Timeout    time.Duration
	RetryCount int
	RetryDelay time.Duration
	Username   string
}

type Option func(*Config)

// WithBaseURL points the client at another webhook host. Used by tests.
func WithBaseURL(u string) Option {
	return func(c *Config) { c.BaseURL = u }
}

func WithRetry(count int, delay time.Duration) Option {
	return func(c *Config) {
		c.RetryCount = count
		c.RetryDelay = delay
	}
}

type EmbedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline,omitempty"`
}

type Embed struct {
	Title       string       `json:"title,omitempty"`
	Description string       `json:"description,omitempty"`
	Color       int          `json:"color,omitempty"`
	Timestamp   string       `json:"timestamp,omitempty"`
	Fields      []EmbedField `json:"fields,omitempty"`
}

type WebhookPayload struct {
	Content  string  `json:"content,omitempty"`
	Username string  `json:"username,omitempty"`
	Embeds   []Embed `json:"embeds,omitempty"`
}

type implDiscord struct {
	l       log.Logger
	webhook Webhook
	cfg     Config
	client  *http.Client
}
