package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"helpdesk-srv/internal/credential"
	"helpdesk-srv/internal/middleware"
	"helpdesk-srv/internal/model"
	"helpdesk-srv/internal/notification"
	"helpdesk-srv/pkg/paginator"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type testLogger struct{}

func (m *testLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *testLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *testLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *testLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *testLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *testLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *testLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *testLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *testLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *testLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *testLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *testLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *testLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *testLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

type mockUseCase struct {
	mock.Mock
}

func (m *mockUseCase) OnAssignment(ctx context.Context, t model.Ticket, assigneeID string) (model.Notification, error) {
	args := m.Called(ctx, t, assigneeID)
	return args.Get(0).(model.Notification), args.Error(1)
}

func (m *mockUseCase) NotifyAssignment(ctx context.Context, input notification.AssignmentInput) (model.Notification, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(model.Notification), args.Error(1)
}

func (m *mockUseCase) OnChatMessage(ctx context.Context, t model.Ticket, senderID, body string) error {
	return m.Called(ctx, t, senderID, body).Error(0)
}

func (m *mockUseCase) List(ctx context.Context, sc model.Scope, input notification.ListInput) (notification.ListOutput, error) {
	args := m.Called(ctx, sc, input)
	return args.Get(0).(notification.ListOutput), args.Error(1)
}

func (m *mockUseCase) UnreadCount(ctx context.Context, sc model.Scope) (int64, error) {
	args := m.Called(ctx, sc)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockUseCase) MarkRead(ctx context.Context, sc model.Scope, ids []int64) (int64, error) {
	args := m.Called(ctx, sc, ids)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockUseCase) MarkOneRead(ctx context.Context, sc model.Scope, id int64) (int64, error) {
	args := m.Called(ctx, sc, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockUseCase) MarkAllRead(ctx context.Context, sc model.Scope) (int64, error) {
	args := m.Called(ctx, sc)
	return args.Get(0).(int64), args.Error(1)
}

type tokenResolver map[string]model.Scope

func (r tokenResolver) Resolve(ctx context.Context, raw string) (model.Scope, error) {
	sc, ok := r[raw]
	if !ok {
		return model.Scope{}, credential.NewAuthError(credential.ReasonUnknown)
	}
	return sc, nil
}

var user = model.NewUserScope("u1", "", model.RoleUser)

func newRouter(uc *mockUseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	l := &testLogger{}
	mw := middleware.New(l, tokenResolver{
		"user": user,
		"proj": model.NewProjectScope("p1"),
	}, "internal-secret", nil)

	h := New(l, uc, nil)
	r := gin.New()
	h.RegisterRoutes(r.Group("/api/v1"), mw)
	h.RegisterInternalRoutes(r.Group("/internal/api/v1"), mw)
	return r
}

func do(r *gin.Engine, method, path, token, body string, headers ...string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestList(t *testing.T) {
	uc := &mockUseCase{}
	now := time.Now()
	uc.On("List", mock.Anything, user, notification.ListInput{
		PaginateQuery: paginator.PaginateQuery{Page: 2, Limit: 100},
	}).Return(notification.ListOutput{
		Notifications: []model.Notification{{ID: 3, TicketID: 7, Kind: "C", Message: "m", State: "read", CreatedAt: now, ReadAt: &now}},
		Pagin:         paginator.Paginator{Total: 101, Count: 1, PerPage: 100, CurrentPage: 2},
	}, nil)

	w := do(newRouter(uc), http.MethodGet, "/api/v1/notifications?page=2&limit=500", "user", "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var body struct {
		Data struct {
			Items []struct {
				ID     int64   `json:"id"`
				ReadAt *string `json:"read_at"`
			} `json:"items"`
			Meta paginator.PaginatorResponse `json:"meta"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Data.Items, 1)
	assert.NotNil(t, body.Data.Items[0].ReadAt)
	assert.Equal(t, 2, body.Data.Meta.TotalPages)
	uc.AssertExpectations(t)
}

func TestUserClaimRequired(t *testing.T) {
	uc := &mockUseCase{}
	r := newRouter(uc)

	assert.Equal(t, http.StatusUnauthorized, do(r, http.MethodGet, "/api/v1/notifications", "", "").Code)
	assert.Equal(t, http.StatusForbidden, do(r, http.MethodGet, "/api/v1/notifications", "proj", "").Code)
	uc.AssertNotCalled(t, "List", mock.Anything, mock.Anything, mock.Anything)
}

func TestUnreadCount(t *testing.T) {
	uc := &mockUseCase{}
	uc.On("UnreadCount", mock.Anything, user).Return(int64(4), nil)

	w := do(newRouter(uc), http.MethodGet, "/api/v1/notifications/unread-count", "user", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"count":4`)
}

func TestMarkRead(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		setup      func(uc *mockUseCase)
		wantStatus int
		wantBody   string
	}{
		{
			name:   "one",
			method: http.MethodPatch,
			path:   "/api/v1/notifications/9/read",
			setup: func(uc *mockUseCase) {
				uc.On("MarkOneRead", mock.Anything, user, int64(9)).Return(int64(1), nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `"updated":1`,
		},
		{
			name:   "one again",
			method: http.MethodPatch,
			path:   "/api/v1/notifications/9/read",
			setup: func(uc *mockUseCase) {
				uc.On("MarkOneRead", mock.Anything, user, int64(9)).Return(int64(0), nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `"updated":0`,
		},
		{
			name:   "one of someone else",
			method: http.MethodPatch,
			path:   "/api/v1/notifications/12/read",
			setup: func(uc *mockUseCase) {
				uc.On("MarkOneRead", mock.Anything, user, int64(12)).Return(int64(0), notification.ErrNotificationNotFound)
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "bad id",
			method:     http.MethodPatch,
			path:       "/api/v1/notifications/x/read",
			setup:      func(uc *mockUseCase) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:   "many",
			method: http.MethodPatch,
			path:   "/api/v1/notifications/read",
			body:   `{"ids":[1,2,3]}`,
			setup: func(uc *mockUseCase) {
				uc.On("MarkRead", mock.Anything, user, []int64{1, 2, 3}).Return(int64(2), nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `"updated":2`,
		},
		{
			name:       "many without ids",
			method:     http.MethodPatch,
			path:       "/api/v1/notifications/read",
			body:       `{"ids":[]}`,
			setup:      func(uc *mockUseCase) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "many with a negative id",
			method:     http.MethodPatch,
			path:       "/api/v1/notifications/read",
			body:       `{"ids":[4,-1]}`,
			setup:      func(uc *mockUseCase) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   `"field":"ids[1]"`,
		},
		{
			name:   "all",
			method: http.MethodPost,
			path:   "/api/v1/notifications/mark-all-read",
			setup: func(uc *mockUseCase) {
				uc.On("MarkAllRead", mock.Anything, user).Return(int64(5), nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `"updated":5`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{}
			tt.setup(uc)

			w := do(newRouter(uc), tt.method, tt.path, "user", tt.body)
			require.Equal(t, tt.wantStatus, w.Code, w.Body.String())
			if tt.wantBody != "" {
				assert.Contains(t, w.Body.String(), tt.wantBody)
			}
			uc.AssertExpectations(t)
		})
	}
}

func TestAssigned(t *testing.T) {
	uc := &mockUseCase{}
	uc.On("NotifyAssignment", mock.Anything, notification.AssignmentInput{TicketID: 7, AssigneeID: "a1"}).
		Return(model.Notification{ID: 1, TicketID: 7, Kind: "T", TargetID: "a1", CreatedAt: time.Now()}, nil)
	uc.On("NotifyAssignment", mock.Anything, notification.AssignmentInput{TicketID: 8}).
		Return(model.Notification{}, notification.ErrTicketNotFound)
	r := newRouter(uc)

	w := do(r, http.MethodPost, "/internal/api/v1/tickets/7/assigned", "", `{"assignee_id":"a1"}`, "X-Internal-Key", "internal-secret")
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = do(r, http.MethodPost, "/internal/api/v1/tickets/8/assigned", "", "", "X-Internal-Key", "internal-secret")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(r, http.MethodPost, "/internal/api/v1/tickets/7/assigned", "", "", "X-Internal-Key", "wrong")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	uc.AssertNumberOfCalls(t, "NotifyAssignment", 2)
}
