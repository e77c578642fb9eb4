package redis

import (
	"context"
	"encoding/json"
	"strings"

	"helpdesk-srv/internal/model"
	"helpdesk-srv/internal/notification"
)

// handleMessage relays a published notification to the subject room. The
// payload is forwarded as is; only its shape is checked.
func (s *subscriber) handleMessage(ctx context.Context, channel, payload string) {
	subjectID, ok := strings.CutPrefix(channel, s.prefix)
	if !ok || subjectID == "" {
		s.logger.Warnf(ctx, "redis: unexpected channel %q", channel)
		return
	}

	var n model.Notification
	if err := json.Unmarshal([]byte(payload), &n); err != nil {
		s.logger.Warnf(ctx, "redis: bad notification on %s: %v", channel, err)
		return
	}

	s.hub.Broadcast(model.UserRoom(subjectID), notification.EventNotification, json.RawMessage(payload), "")
}
