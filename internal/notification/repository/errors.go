package repository

import "errors"

var (
	ErrInvalidTarget = errors.New("notification target is required")
	ErrNotFound      = errors.New("notification not found")
)
