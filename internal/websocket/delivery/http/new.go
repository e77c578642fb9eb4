package http

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"helpdesk-srv/internal/chat"
	"helpdesk-srv/internal/credential"
	ws "helpdesk-srv/internal/websocket"
	"helpdesk-srv/pkg/discord"
	"helpdesk-srv/pkg/log"
)

// Config tunes the socket transport.
type Config struct {
	PingInterval    time.Duration
	PongWait        time.Duration
	WriteWait       time.Duration
	AuthTimeout     time.Duration
	MaxMessageSize  int64
	ReadBufferSize  int
	WriteBufferSize int
	SendBufferSize  int
	MaxConnections  int
	AllowedOrigins  []string

	FramesPerSecond float64
	Burst           int
}

type Handler struct {
	l           log.Logger
	hub         ws.UseCase
	chat        chat.UseCase
	credentials credential.UseCase
	discord     discord.IDiscord
	cfg         Config
	upgrader    websocket.Upgrader
}

func New(l log.Logger, hub ws.UseCase, chatUC chat.UseCase, credentials credential.UseCase, d discord.IDiscord, cfg Config) *Handler {
	cfg = withDefaults(cfg)
	return &Handler{
		l:           l,
		hub:         hub,
		chat:        chatUC,
		credentials: credentials,
		discord:     d,
		cfg:         cfg,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  cfg.ReadBufferSize,
			WriteBufferSize: cfg.WriteBufferSize,
			CheckOrigin:     checkOrigin(cfg.AllowedOrigins),
		},
	}
}

func withDefaults(cfg Config) Config {
	if cfg.PongWait <= 0 {
		cfg.PongWait = 60 * time.Second
	}
	if cfg.PingInterval <= 0 || cfg.PingInterval >= cfg.PongWait {
		cfg.PingInterval = cfg.PongWait * 9 / 10
	}
	if cfg.WriteWait <= 0 {
		cfg.WriteWait = 10 * time.Second
	}
	if cfg.AuthTimeout <= 0 {
		cfg.AuthTimeout = 10 * time.Second
	}
	if cfg.MaxMessageSize <= 0 {
		cfg.MaxMessageSize = 64 << 10
	}
	if cfg.SendBufferSize <= 0 {
		cfg.SendBufferSize = 256
	}
	return cfg
}

// checkOrigin allows requests without an Origin header (non-browser clients)
// and, when a list is configured, only the listed origins.
func checkOrigin(allowed []string) func(r *http.Request) bool {
	set := make(map[string]struct{}, len(allowed))
	for _, o := range allowed {
		if o == "*" {
			return func(*http.Request) bool { return true }
		}
		set[o] = struct{}{}
	}
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" || len(set) == 0 {
			return true
		}
		_, ok := set[origin]
		return ok
	}
}
