package minio

import "errors"

var (
	ErrObjectNotFound = errors.New("minio: object not found")
	ErrInvalidRef     = errors.New("minio: invalid object reference")
	ErrClosed         = errors.New("minio: client closed")
)

// InvalidConfigError names the missing config field.
type InvalidConfigError struct {
	Field string
}

func (e *InvalidConfigError) Error() string {
	return "minio: " + e.Field + " is required"
}
