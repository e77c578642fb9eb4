package http

import (
	"fmt"

	"helpdesk-srv/internal/model"
	"helpdesk-srv/internal/notification"
	"helpdesk-srv/pkg/errors"
	"helpdesk-srv/pkg/paginator"
	"helpdesk-srv/pkg/response"
)

type listReq struct {
	paginator.PaginateQuery
	Unread bool `form:"unread"`
}

func (r listReq) toInput() notification.ListInput {
	return notification.ListInput{
		PaginateQuery: r.PaginateQuery,
		UnreadOnly:    r.Unread,
	}
}

const maxMarkReadIDs = 100

type markReadReq struct {
	IDs []int64 `json:"ids" binding:"required,min=1"`
}

func (r markReadReq) validate() *errors.ValidationErrorCollector {
	verr := errors.NewValidationErrorCollector()
	if len(r.IDs) > maxMarkReadIDs {
		verr.Add(errors.NewValidationError(errWrongBody.Code, "ids", fmt.Sprintf("at most %d ids per request", maxMarkReadIDs)))
	}
	for i, id := range r.IDs {
		if id <= 0 {
			verr.Add(errors.NewValidationError(errWrongBody.Code, fmt.Sprintf("ids[%d]", i), "must be positive"))
		}
	}
	return verr
}

type assignedReq struct {
	AssigneeID string `json:"assignee_id"`
}

type notificationResp struct {
	ID        int64               `json:"id"`
	TicketID  int64               `json:"ticket_id"`
	Kind      string              `json:"kind"`
	Message   string              `json:"message"`
	State     string              `json:"state"`
	CreatedAt response.Timestamp  `json:"created_at"`
	ReadAt    *response.Timestamp `json:"read_at,omitempty"`
}

type listResp struct {
	Items []notificationResp          `json:"items"`
	Meta  paginator.PaginatorResponse `json:"meta"`
}

type countResp struct {
	Count int64 `json:"count"`
}

type updatedResp struct {
	Updated int64 `json:"updated"`
}

func newNotificationResp(n model.Notification) notificationResp {
	res := notificationResp{
		ID:        n.ID,
		TicketID:  n.TicketID,
		Kind:      n.Kind,
		Message:   n.Message,
		State:     n.State,
		CreatedAt: response.Timestamp(n.CreatedAt),
	}
	if n.ReadAt != nil {
		t := response.Timestamp(*n.ReadAt)
		res.ReadAt = &t
	}
	return res
}

func (h *Handler) newListResp(o notification.ListOutput) listResp {
	items := make([]notificationResp, len(o.Notifications))
	for i, n := range o.Notifications {
		items[i] = newNotificationResp(n)
	}
	return listResp{
		Items: items,
		Meta:  o.Pagin.ToResponse(),
	}
}
