package jwt

import (
	"errors"
	"testing"
	"time"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestNewRejectsShortSecret(t *testing.T) {
	if _, err := New(Config{SecretKey: "short"}); !errors.Is(err, ErrWeakSecret) {
		t.Fatalf("New() error = %v, want ErrWeakSecret", err)
	}
}

func TestVerify(t *testing.T) {
	mgr, err := New(Config{SecretKey: testSecret, Issuer: "helpdesk", TTL: time.Hour})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	other, _ := New(Config{SecretKey: "fedcba9876543210fedcba9876543210"})

	valid, _ := mgr.GenerateToken("42", "agent@example.com", "admin")
	foreign, _ := other.GenerateToken("42", "agent@example.com", "admin")

	impl := mgr.(*managerImpl)
	impl.now = func() time.Time { return time.Now().Add(-3 * time.Hour) }
	expired, _ := mgr.GenerateToken("42", "", "user")
	impl.now = time.Now

	tests := []struct {
		name    string
		token   string
		wantErr error
	}{
		{"valid", valid, nil},
		{"expired", expired, ErrTokenExpired},
		{"wrong key", foreign, ErrTokenInvalidSignature},
		{"garbage", "not-a-jwt", ErrTokenMalformed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := mgr.Verify(tt.token)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("Verify() unexpected error: %v", err)
				}
				if claims.Subject != "42" || claims.Role != "admin" {
					t.Errorf("Verify() claims = %+v", claims)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Verify() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
