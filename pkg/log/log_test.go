package log

import (
	"context"
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestWithFields(t *testing.T) {
	tests := []struct {
		name  string
		steps [][]any
		want  int
	}{
		{name: "no fields", steps: nil, want: 0},
		{name: "single call", steps: [][]any{{"conn_id", "c1"}}, want: 2},
		{name: "nested calls accumulate", steps: [][]any{{"conn_id", "c1"}, {"ticket_id", int64(7)}}, want: 4},
		{name: "empty call is a no-op", steps: [][]any{{}}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			for _, kv := range tt.steps {
				ctx = WithFields(ctx, kv...)
			}
			got, _ := ctx.Value(fieldsKey{}).([]any)
			if len(got) != tt.want {
				t.Errorf("WithFields() fields = %v, want %d entries", got, tt.want)
			}
		})
	}
}

func TestInitLevels(t *testing.T) {
	for _, lvl := range []string{LevelDebug, LevelInfo, "bogus"} {
		l := Init(ZapConfig{Level: lvl, Mode: ModeDevelopment, Encoding: EncodingConsole, Service: "test"})
		ctx := WithFields(context.Background(), "level", lvl)
		l.Debugf(ctx, "debug line %s", lvl)
		l.Infof(ctx, "info line %s", lvl)
	}
}

func TestLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zapcore.Level
	}{
		{LevelInfo, zapcore.InfoLevel},
		{LevelWarn, zapcore.WarnLevel},
		{LevelError, zapcore.ErrorLevel},
		{"", zapcore.InfoLevel},
		{"verbose", zapcore.DebugLevel},
	}
	for _, tt := range tests {
		l := &zapLogger{cfg: &ZapConfig{Level: tt.in}}
		if got := l.level(); got != tt.want {
			t.Errorf("level(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
