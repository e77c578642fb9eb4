package chat

import "helpdesk-srv/internal/model"

// CanAccess reports whether sc may take part in the conversation of t.
// An unassigned ticket has no conversation at all.
func CanAccess(sc model.Scope, t model.Ticket) error {
	if !t.IsAssigned() {
		return ErrTicketNotAssigned
	}
	if sc.IsAdmin() {
		return nil
	}
	sub := sc.SubjectID()
	if !sc.IsProject && (sub == t.CreatorID || sub == t.AssigneeID) {
		return nil
	}
	return ErrNotAllowed
}
