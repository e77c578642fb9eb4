package postgres

import "errors"

var ErrInvalidObjectIDs = errors.New("invalid object ids")
