package discord

import (
	"context"
	"time"
)

// ReportBug posts a preformatted crash report as a red embed.
func (d *implDiscord) ReportBug(ctx context.Context, message string) error {
	return d.sendWithRetry(ctx, WebhookPayload{
		Username: d.cfg.Username,
		Embeds: []Embed{{
			Title:       reportBugTitle,
			Description: "```" + truncate(message, MaxEmbedDescriptionLen-6) + "```",
			Color:       ColorRed,
			Timestamp:   time.Now().Format(time.RFC3339),
		}},
	})
}

func (d *implDiscord) SendError(ctx context.Context, title, description string, err error) error {
	var fields []EmbedField
	if err != nil {
		fields = append(fields, EmbedField{Name: "Error", Value: truncate(err.Error(), MaxFieldValueLen)})
	}
	return d.sendWithRetry(ctx, WebhookPayload{
		Username: d.cfg.Username,
		Embeds: []Embed{{
			Title:       truncate(title, 256),
			Description: truncate(description, MaxEmbedDescriptionLen),
			Color:       ColorOrange,
			Timestamp:   time.Now().Format(time.RFC3339),
			Fields:      fields,
		}},
	})
}

func (d *implDiscord) Close() error {
	d.client.CloseIdleConnections()
	return nil
}
