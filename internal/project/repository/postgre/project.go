package postgres

import (
	"context"
	"database/sql"
	"errors"

	"helpdesk-srv/internal/model"
	"helpdesk-srv/internal/project/repository"

	"github.com/aarondl/sqlboiler/v4/queries"
)

const findByTokenQuery = `SELECT id, name FROM projects WHERE api_token = $1 AND deleted_at IS NULL`

type dbProject struct {
	ID   string `boil:"id"`
	Name string `boil:"name"`
}

func (r *implRepository) FindByToken(ctx context.Context, token string) (model.Project, error) {
	if token == "" {
		return model.Project{}, repository.ErrNotFound
	}

	var row dbProject
	if err := queries.Raw(findByTokenQuery, token).Bind(ctx, r.db, &row); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Project{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "internal.project.repository.postgres.FindByToken.Bind: %v", err)
		return model.Project{}, err
	}
	return model.Project{ID: row.ID, Name: row.Name}, nil
}
