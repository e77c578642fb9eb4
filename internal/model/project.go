package model

// Project is the owner of a project-scoped credential.
type Project struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
