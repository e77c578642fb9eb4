package credential

import (
	"context"

	"helpdesk-srv/internal/model"
)

// UseCase turns a raw credential into an identity claim. It is shared by the
// HTTP auth middleware and the websocket handshake.
//
//go:generate mockery --name UseCase
type UseCase interface {
	Resolve(ctx context.Context, raw string) (model.Scope, error)
}
