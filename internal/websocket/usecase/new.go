package usecase

import (
	"sync"

	ws "helpdesk-srv/internal/websocket"
	pkgLog "helpdesk-srv/pkg/log"
)

type member struct {
	client ws.Client
	rooms  map[string]struct{}
}

// Hub is the in-process connection registry. All state sits behind one
// RWMutex; callers never see a connection half registered.
type Hub struct {
	l              pkgLog.Logger
	maxConnections int

	mu     sync.RWMutex
	conns  map[string]*member
	rooms  map[string]map[string]struct{}
	closed bool
}

var _ ws.UseCase = &Hub{}

// New creates the registry. maxConnections <= 0 means unlimited.
func New(l pkgLog.Logger, maxConnections int) *Hub {
	return &Hub{
		l:              l,
		maxConnections: maxConnections,
		conns:          make(map[string]*member),
		rooms:          make(map[string]map[string]struct{}),
	}
}
