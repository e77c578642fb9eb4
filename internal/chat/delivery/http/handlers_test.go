package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"helpdesk-srv/internal/chat"
	"helpdesk-srv/internal/credential"
	"helpdesk-srv/internal/middleware"
	"helpdesk-srv/internal/model"

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

func (m *mockUseCase) Join(ctx context.Context, sc model.Scope, connID string, ticketID int64) (chat.JoinOutput, error) {
	args := m.Called(ctx, sc, connID, ticketID)
	return args.Get(0).(chat.JoinOutput), args.Error(1)
}

func (m *mockUseCase) Send(ctx context.Context, sc model.Scope, connID string, input chat.SendInput) (model.ChatMessage, error) {
	args := m.Called(ctx, sc, connID, input)
	return args.Get(0).(model.ChatMessage), args.Error(1)
}

func (m *mockUseCase) Leave(ctx context.Context, connID string, ticketID int64) {
	m.Called(ctx, connID, ticketID)
}

func (m *mockUseCase) History(ctx context.Context, sc model.Scope, ticketID int64) ([]model.ChatMessage, error) {
	args := m.Called(ctx, sc, ticketID)
	msgs, _ := args.Get(0).([]model.ChatMessage)
	return msgs, args.Error(1)
}

type staticResolver struct{ sc model.Scope }

func (s staticResolver) Resolve(ctx context.Context, raw string) (model.Scope, error) {
	if raw == "" {
		return model.Scope{}, credential.NewAuthError(credential.ReasonMissing)
	}
	return s.sc, nil
}

func TestHistory(t *testing.T) {
	gin.SetMode(gin.TestMode)
	user := model.NewUserScope("u1", "", model.RoleUser)

	tests := []struct {
		name       string
		path       string
		setup      func(uc *mockUseCase)
		wantStatus int
		wantCount  int
	}{
		{
			name: "ok",
			path: "/api/v1/tickets/5/messages",
			setup: func(uc *mockUseCase) {
				uc.On("History", mock.Anything, user, int64(5)).Return([]model.ChatMessage{
					{ID: 1, TicketID: 5, SenderID: "u1", Body: "hi", CreatedAt: time.Now()},
					{ID: 2, TicketID: 5, SenderID: "u2", Body: "hello", CreatedAt: time.Now()},
				}, nil)
			},
			wantStatus: http.StatusOK,
			wantCount:  2,
		},
		{name: "bad id", path: "/api/v1/tickets/abc/messages", setup: func(uc *mockUseCase) {}, wantStatus: http.StatusBadRequest},
		{
			name: "not found",
			path: "/api/v1/tickets/6/messages",
			setup: func(uc *mockUseCase) {
				uc.On("History", mock.Anything, user, int64(6)).Return(nil, chat.ErrTicketNotFound)
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name: "not assigned",
			path: "/api/v1/tickets/7/messages",
			setup: func(uc *mockUseCase) {
				uc.On("History", mock.Anything, user, int64(7)).Return(nil, chat.ErrTicketNotAssigned)
			},
			wantStatus: http.StatusForbidden,
		},
		{
			name: "not allowed",
			path: "/api/v1/tickets/8/messages",
			setup: func(uc *mockUseCase) {
				uc.On("History", mock.Anything, user, int64(8)).Return(nil, chat.ErrNotAllowed)
			},
			wantStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{}
			tt.setup(uc)

			l := &testLogger{}
			h := New(l, uc, nil)
			r := gin.New()
			h.RegisterRoutes(r.Group("/api/v1"), middleware.New(l, staticResolver{user}, "", nil))

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			req.Header.Set("Authorization", "Bearer t")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			require.Equal(t, tt.wantStatus, w.Code, w.Body.String())
			if tt.wantStatus == http.StatusOK {
				var body struct {
					Data struct {
						Messages []struct {
							ID int64 `json:"id"`
						} `json:"messages"`
					} `json:"data"`
				}
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
				assert.Len(t, body.Data.Messages, tt.wantCount)
				assert.Equal(t, int64(1), body.Data.Messages[0].ID)
			}
			uc.AssertExpectations(t)
		})
	}
}
