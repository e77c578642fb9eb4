package usecase

import (
	"context"
	"encoding/json"
	"sort"
	"sync"
	"testing"
	"time"

	"helpdesk-srv/internal/chat"
	"helpdesk-srv/internal/model"
	"helpdesk-srv/internal/notification"
	notifRepo "helpdesk-srv/internal/notification/repository"
	notifUC "helpdesk-srv/internal/notification/usecase"
	ws "helpdesk-srv/internal/websocket"
	wsUC "helpdesk-srv/internal/websocket/usecase"
	"helpdesk-srv/pkg/paginator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memNotifications struct {
	mu   sync.Mutex
	rows []model.Notification
}

func (r *memNotifications) Create(ctx context.Context, opts notifRepo.CreateOptions) (model.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := model.Notification{
		ID:        int64(len(r.rows) + 1),
		TicketID:  opts.TicketID,
		Kind:      opts.Kind,
		Message:   opts.Message,
		TargetID:  opts.TargetID,
		State:     model.NotificationStateUnread,
		CreatedAt: time.Now(),
	}
	r.rows = append(r.rows, n)
	return n, nil
}

func (r *memNotifications) Get(ctx context.Context, opts notifRepo.GetOptions) ([]model.Notification, paginator.Paginator, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var res []model.Notification
	for _, n := range r.rows {
		if n.TargetID == opts.Filter.TargetID && (opts.Filter.State == "" || n.State == opts.Filter.State) {
			res = append(res, n)
		}
	}
	sort.Slice(res, func(i, j int) bool { return res[i].ID > res[j].ID })
	return res, paginator.Paginator{Total: int64(len(res)), Count: int64(len(res))}, nil
}

func (r *memNotifications) Detail(ctx context.Context, opts notifRepo.DetailOptions) (model.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, n := range r.rows {
		if n.ID == opts.ID && n.TargetID == opts.TargetID {
			return n, nil
		}
	}
	return model.Notification{}, notifRepo.ErrNotFound
}

func (r *memNotifications) CountUnread(ctx context.Context, targetID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var c int64
	for _, n := range r.rows {
		if n.TargetID == targetID && n.IsUnread() {
			c++
		}
	}
	return c, nil
}

func (r *memNotifications) MarkRead(ctx context.Context, opts notifRepo.MarkReadOptions) (int64, error) {
	return 0, nil
}

type socketClient struct {
	id    string
	scope model.Scope

	mu     sync.Mutex
	frames []ws.Frame
}

func (c *socketClient) ID() string         { return c.id }
func (c *socketClient) Scope() model.Scope { return c.scope }
func (c *socketClient) Close()             {}

func (c *socketClient) Send(data []byte) bool {
	var f ws.Frame
	if err := json.Unmarshal(data, &f); err != nil {
		return false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.frames = append(c.frames, f)
	return true
}

func (c *socketClient) messages(t *testing.T) []model.ChatMessage {
	t.Helper()
	c.mu.Lock()
	defer c.mu.Unlock()
	var res []model.ChatMessage
	for _, f := range c.frames {
		if f.Event != chat.EventMessage {
			continue
		}
		var m model.ChatMessage
		require.NoError(t, json.Unmarshal(f.Data, &m))
		res = append(res, m)
	}
	return res
}

func TestChatNotifiesOnlyAbsentParticipant(t *testing.T) {
	ctx := context.Background()
	l := &testLogger{}

	tickets := fakeTickets{
		5: {ID: 5, Title: "Laptop", Status: model.TicketStatusUnassigned, CreatorID: "c"},
	}
	hub := wsUC.New(l, 0)
	notifs := &memNotifications{}
	notifier := notifUC.New(l, notifs, tickets, hub, nil, notifUC.Config{})
	uc := New(l, tickets, &fakeMessages{}, hub, notifier, nil, Options{}).(*usecase)
	uc.runAsync = func(fn func()) { fn() }

	creatorScope := model.NewUserScope("c", "c@example.com", model.RoleUser)
	userScope := model.NewUserScope("u", "u@example.com", model.RoleUser)
	creatorConn := &socketClient{id: "conn-c", scope: creatorScope}
	userConn := &socketClient{id: "conn-u", scope: userScope}
	require.NoError(t, hub.Register(ctx, creatorConn))
	require.NoError(t, hub.Register(ctx, userConn))

	_, err := uc.Join(ctx, userScope, "conn-u", 5)
	require.ErrorIs(t, err, chat.ErrTicketNotAssigned)

	tickets[5] = model.Ticket{ID: 5, Title: "Laptop", Status: model.TicketStatusAssigned, CreatorID: "c", AssigneeID: "u"}

	joined, err := uc.Join(ctx, userScope, "conn-u", 5)
	require.NoError(t, err)
	assert.Empty(t, joined.Messages)
	_, err = uc.Join(ctx, creatorScope, "conn-c", 5)
	require.NoError(t, err)

	_, err = uc.Send(ctx, creatorScope, "conn-c", chat.SendInput{TicketID: 5, Body: "need help"})
	require.NoError(t, err)

	got := userConn.messages(t)
	require.Len(t, got, 1)
	assert.Equal(t, "need help", got[0].Body)
	assert.Empty(t, creatorConn.messages(t), "sender is excluded from the broadcast")

	unread, err := notifier.UnreadCount(ctx, userScope)
	require.NoError(t, err)
	assert.Equal(t, int64(0), unread, "a participant in the room is not notified")

	hub.Disconnect(ctx, "conn-u")

	_, err = uc.Send(ctx, creatorScope, "conn-c", chat.SendInput{TicketID: 5, Body: "still stuck"})
	require.NoError(t, err)

	list, err := notifier.List(ctx, userScope, notification.ListInput{UnreadOnly: true})
	require.NoError(t, err)
	require.Len(t, list.Notifications, 1)
	n := list.Notifications[0]
	assert.Equal(t, model.NotificationKindChat, n.Kind)
	assert.Equal(t, `New message on ticket #5: "still stuck"`, n.Message)
	assert.Equal(t, "u", n.TargetID)
	assert.Equal(t, model.NotificationStateUnread, n.State)
	assert.Equal(t, int64(5), n.TicketID)

	creatorUnread, err := notifier.UnreadCount(ctx, creatorScope)
	require.NoError(t, err)
	assert.Equal(t, int64(0), creatorUnread)
}
