package repository

import "errors"

var ErrNotFound = errors.New("ticket not found")
