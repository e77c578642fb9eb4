package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"helpdesk-srv/internal/model"
)

// Push publishes n on the subject's channel.
func (p *publisher) Push(ctx context.Context, subjectID string, n model.Notification) error {
	if subjectID == "" {
		return fmt.Errorf("push: empty subject")
	}
	payload, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("push: marshal: %w", err)
	}
	if err := p.redis.Publish(ctx, p.prefix+subjectID, payload); err != nil {
		return fmt.Errorf("push: publish: %w", err)
	}
	return nil
}
