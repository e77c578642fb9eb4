package config

import (
	"strings"
	"testing"
	"time"
)

func validConfig() *Config {
	return &Config{
		Postgres:     PostgresConfig{Host: "db", DBName: "helpdesk"},
		Redis:        RedisConfig{Host: "redis", Port: 6379},
		JWT:          JWTConfig{SecretKey: strings.Repeat("k", 32)},
		Notification: NotificationConfig{SnippetLength: 140},
		WebSocket:    WebSocketConfig{PingInterval: 25 * time.Second, PongWait: time.Minute},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "missing secret", mutate: func(c *Config) { c.JWT.SecretKey = "" }, wantErr: "jwt.secret_key is required"},
		{name: "short secret", mutate: func(c *Config) { c.JWT.SecretKey = "abc" }, wantErr: "at least 32"},
		{name: "missing db", mutate: func(c *Config) { c.Postgres.DBName = "" }, wantErr: "postgres"},
		{name: "zero snippet", mutate: func(c *Config) { c.Notification.SnippetLength = 0 }, wantErr: "snippet_length"},
		{name: "ping after pong", mutate: func(c *Config) { c.WebSocket.PingInterval = 2 * time.Minute }, wantErr: "ping_interval"},
		{name: "attachments without minio", mutate: func(c *Config) { c.MinIO.VerifyAttachments = true }, wantErr: "minio.endpoint"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			err := validate(cfg)
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("validate() = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("validate() = %v, want error containing %q", err, tt.wantErr)
			}
		})
	}
}
