package model

import (
	"context"
	"testing"
)

func TestScope(t *testing.T) {
	tests := []struct {
		name        string
		sc          Scope
		wantAdmin   bool
		wantSubject string
		wantUser    bool
	}{
		{"admin user", NewUserScope("7", "a@x.io", RoleAdmin), true, "7", true},
		{"plain user", NewUserScope("8", "", RoleUser), false, "8", true},
		{"project claim", NewProjectScope("42"), false, "project-42", false},
		{"project claim with stray role", Scope{ProjectID: "1", IsProject: true, Role: RoleAdmin}, false, "project-1", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.sc.IsAdmin(); got != tt.wantAdmin {
				t.Errorf("IsAdmin() = %v, want %v", got, tt.wantAdmin)
			}
			if got := tt.sc.SubjectID(); got != tt.wantSubject {
				t.Errorf("SubjectID() = %q, want %q", got, tt.wantSubject)
			}
			if got := tt.sc.IsUser(); got != tt.wantUser {
				t.Errorf("IsUser() = %v, want %v", got, tt.wantUser)
			}
		})
	}
}

func TestScopeContext(t *testing.T) {
	if _, ok := GetScopeFromContext(context.Background()); ok {
		t.Fatal("expected no scope in empty context")
	}
	ctx := SetScopeToContext(context.Background(), NewUserScope("9", "", RoleUser))
	sc, ok := GetScopeFromContext(ctx)
	if !ok || sc.UserID != "9" {
		t.Errorf("GetScopeFromContext() = %+v, %v", sc, ok)
	}
}

func TestRooms(t *testing.T) {
	if got := TicketRoom(15); got != "ticket_15" {
		t.Errorf("TicketRoom() = %q", got)
	}
	if got := UserRoom("abc"); got != "user_abc" {
		t.Errorf("UserRoom() = %q", got)
	}
}
