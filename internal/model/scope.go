package model

import "context"

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// Scope is the identity resolved from a credential. It is either a user
// claim (UserID set) or a project claim (IsProject set), never both.
type Scope struct {
	UserID    string `json:"user_id,omitempty"`
	Email     string `json:"email,omitempty"`
	Role      string `json:"role,omitempty"`
	ProjectID string `json:"project_id,omitempty"`
	IsProject bool   `json:"is_project,omitempty"`
}

func NewUserScope(userID, email, role string) Scope {
	return Scope{UserID: userID, Email: email, Role: role}
}

func NewProjectScope(projectID string) Scope {
	return Scope{ProjectID: projectID, IsProject: true}
}

// IsAdmin reports whether the claim carries the admin role. Project claims
// are never admin.
func (s Scope) IsAdmin() bool {
	return !s.IsProject && s.Role == RoleAdmin
}

// SubjectID is the identifier used for presence and notification targeting.
func (s Scope) SubjectID() string {
	if s.IsProject {
		return "project-" + s.ProjectID
	}
	return s.UserID
}

func (s Scope) IsUser() bool {
	return !s.IsProject && s.UserID != ""
}

type scopeKey struct{}

func SetScopeToContext(ctx context.Context, sc Scope) context.Context {
	return context.WithValue(ctx, scopeKey{}, sc)
}

func GetScopeFromContext(ctx context.Context) (Scope, bool) {
	sc, ok := ctx.Value(scopeKey{}).(Scope)
	return sc, ok
}
