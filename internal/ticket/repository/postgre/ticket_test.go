package postgres

import (
	"context"
	"regexp"
	"testing"

	"helpdesk-srv/internal/ticket/repository"

	"github.com/DATA-DOG/go-sqlmock"
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

var ticketColumns = []string{"id", "title", "status", "project_id", "creator_id", "assignee_id"}

func TestDetail(t *testing.T) {
	tests := []struct {
		name         string
		rows         *sqlmock.Rows
		wantErr      error
		wantAssignee string
		wantAssigned bool
	}{
		{
			name:         "assigned ticket",
			rows:         sqlmock.NewRows(ticketColumns).AddRow(int64(5), "Printer jam", "assigned", "p1", "u1", "u2"),
			wantAssignee: "u2",
			wantAssigned: true,
		},
		{
			name: "unassigned ticket",
			rows: sqlmock.NewRows(ticketColumns).AddRow(int64(5), "Printer jam", "unassigned", nil, "u1", nil),
		},
		{
			name:    "missing ticket",
			rows:    sqlmock.NewRows(ticketColumns),
			wantErr: repository.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			if err != nil {
				t.Fatalf("sqlmock.New: %v", err)
			}
			defer db.Close()

			mock.ExpectQuery(regexp.QuoteMeta("FROM tickets")).WithArgs(int64(5)).WillReturnRows(tt.rows)

			repo := New(&testLogger{}, db)
			got, err := repo.Detail(context.Background(), 5)
			if err != tt.wantErr {
				t.Fatalf("Detail() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr == nil {
				if got.AssigneeID != tt.wantAssignee || got.IsAssigned() != tt.wantAssigned {
					t.Errorf("Detail() = %+v", got)
				}
				if got.CreatorID != "u1" {
					t.Errorf("Detail() creator = %q", got.CreatorID)
				}
			}
			if err := mock.ExpectationsWereMet(); err != nil {
				t.Errorf("unmet expectations: %v", err)
			}
		})
	}
}
