package rabbitmq

import (
	"context"
	"errors"
	"testing"

	"helpdesk-srv/internal/model"
	"helpdesk-srv/internal/notification"
	pkgRabbit "helpdesk-srv/pkg/rabbitmq"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
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

// stubUseCase only implements NotifyAssignment; the embedded interface
// panics on anything else.
type stubUseCase struct {
	notification.UseCase
	got []notification.AssignmentInput
	err error
}

func (s *stubUseCase) NotifyAssignment(ctx context.Context, in notification.AssignmentInput) (model.Notification, error) {
	s.got = append(s.got, in)
	if s.err != nil {
		return model.Notification{}, s.err
	}
	return model.Notification{ID: 1, TargetID: in.AssigneeID}, nil
}

func TestHandleAssigned(t *testing.T) {
	tests := []struct {
		name          string
		body          string
		ucErr         error
		wantInput     *notification.AssignmentInput
		wantErr       bool
		wantPermanent bool
	}{
		{
			name:      "ok",
			body:      `{"ticket_id":7,"assignee_id":"a1"}`,
			wantInput: &notification.AssignmentInput{TicketID: 7, AssigneeID: "a1"},
		},
		{
			name:      "legacy field",
			body:      `{"tick_id":8}`,
			wantInput: &notification.AssignmentInput{TicketID: 8},
		},
		{name: "garbage", body: `{`, wantErr: true, wantPermanent: true},
		{name: "unknown ticket", body: `{"ticket_id":9}`, ucErr: notification.ErrTicketNotFound, wantErr: true, wantPermanent: true},
		{name: "store down", body: `{"ticket_id":9}`, ucErr: errors.New("db down"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &stubUseCase{err: tt.ucErr}
			c := New(&testLogger{}, uc)

			err := c.handleAssigned(context.Background(), amqp.Delivery{Body: []byte(tt.body)})
			if !tt.wantErr {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
				assert.Equal(t, tt.wantPermanent, errors.Is(err, pkgRabbit.ErrPermanent))
			}
			if tt.wantInput != nil {
				assert.Equal(t, []notification.AssignmentInput{*tt.wantInput}, uc.got)
			}
		})
	}
}
