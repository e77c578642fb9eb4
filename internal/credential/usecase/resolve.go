package usecase

import (
	"context"
	"errors"

	"helpdesk-srv/internal/credential"
	"helpdesk-srv/internal/model"
	projectRepo "helpdesk-srv/internal/project/repository"
	"helpdesk-srv/pkg/jwt"
)

// Resolve verifies raw as a signed token first. When that fails for any
// reason the project-token table is consulted before giving up, and the
// token verification reason is reported.
func (uc *usecase) Resolve(ctx context.Context, raw string) (model.Scope, error) {
	token := credential.CleanToken(raw)
	if token == "" {
		return model.Scope{}, credential.NewAuthError(credential.ReasonMissing)
	}

	claims, jwtErr := uc.jwt.Verify(token)
	if jwtErr == nil {
		role := claims.Role
		if role == "" {
			role = model.RoleUser
		}
		return model.NewUserScope(claims.Subject, claims.Email, role), nil
	}

	project, err := uc.projects.FindByToken(ctx, token)
	if err == nil {
		return model.NewProjectScope(project.ID), nil
	}
	if !errors.Is(err, projectRepo.ErrNotFound) {
		uc.l.Errorf(ctx, "internal.credential.usecase.Resolve.FindByToken: %v", err)
	}

	return model.Scope{}, credential.NewAuthError(reasonFor(jwtErr))
}

func reasonFor(err error) string {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return credential.ReasonExpired
	case errors.Is(err, jwt.ErrTokenInvalidSignature):
		return credential.ReasonInvalidSignature
	default:
		return credential.ReasonUnknown
	}
}
