package postgres

import (
	"helpdesk-srv/internal/model"

	"github.com/aarondl/null/v8"
)

const detailQuery = `SELECT id, title, status, project_id, creator_id, assignee_id
FROM tickets
WHERE id = $1 AND deleted_at IS NULL`

type dbTicket struct {
	ID         int64       `boil:"id"`
	Title      string      `boil:"title"`
	Status     string      `boil:"status"`
	ProjectID  null.String `boil:"project_id"`
	CreatorID  string      `boil:"creator_id"`
	AssigneeID null.String `boil:"assignee_id"`
}

func (t dbTicket) toModel() model.Ticket {
	return model.Ticket{
		ID:         t.ID,
		Title:      t.Title,
		Status:     t.Status,
		ProjectID:  t.ProjectID.String,
		CreatorID:  t.CreatorID,
		AssigneeID: t.AssigneeID.String,
	}
}
