package repository

import (
	"context"

	"helpdesk-srv/internal/model"
)

// Repository resolves project-scoped credentials.
type Repository interface {
	FindByToken(ctx context.Context, token string) (model.Project, error)
}
