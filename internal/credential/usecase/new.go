package usecase

import (
	"helpdesk-srv/internal/credential"
	projectRepo "helpdesk-srv/internal/project/repository"
	"helpdesk-srv/pkg/jwt"
	pkgLog "helpdesk-srv/pkg/log"
)

type usecase struct {
	l        pkgLog.Logger
	jwt      jwt.Manager
	projects projectRepo.Repository
}

var _ credential.UseCase = &usecase{}

func New(l pkgLog.Logger, jwtManager jwt.Manager, projects projectRepo.Repository) credential.UseCase {
	return &usecase{
		l:        l,
		jwt:      jwtManager,
		projects: projects,
	}
}
