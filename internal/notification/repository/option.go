package repository

import "helpdesk-srv/pkg/paginator"

type CreateOptions struct {
	TicketID int64
	Kind     string
	Message  string
	TargetID string
}

type Filter struct {
	TargetID string
	State    string
}

type GetOptions struct {
	Filter        Filter
	PaginateQuery paginator.PaginateQuery
}

type DetailOptions struct {
	TargetID string
	ID       int64
}

type MarkReadOptions struct {
	TargetID string
	IDs      []int64
}
