package postgres

import (
	"database/sql"

	"helpdesk-srv/internal/project/repository"
	pkgLog "helpdesk-srv/pkg/log"
)

type implRepository struct {
	l  pkgLog.Logger
	db *sql.DB
}

var _ repository.Repository = &implRepository{}

func New(l pkgLog.Logger, db *sql.DB) repository.Repository {
	return &implRepository{l: l, db: db}
}
