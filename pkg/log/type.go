package log

import "go.uber.org/zap"

const (
	ModeProduction  = "production"
	ModeDevelopment = "development"

	EncodingConsole = "console"
	EncodingJSON    = "json"
)

// Accepted logger.level values. Anything else logs at debug.
const (
	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"
)

// ZapConfig mirrors the logger section of the service config. Service,
// when set, is attached to every line as the "service" field.
type ZapConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
	Service      string
}

type zapLogger struct {
	sugarLogger *zap.SugaredLogger
	cfg         *ZapConfig
}

// fieldsKey holds the []any key/value pairs added by WithFields.
type fieldsKey struct{}
