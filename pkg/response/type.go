package response

import (
	"encoding/json"
	"time"

	"helpdesk-srv/pkg/errors"
)

// Resp is the JSON envelope of every HTTP response.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
	Errors    any    `json:"errors,omitempty"`
}

// ErrorMapping maps domain sentinel errors to their HTTP form.
type ErrorMapping map[error]*errors.HTTPError

// Timestamp renders as RFC 3339 in UTC with millisecond precision, the
// same shape the socket frames use for message timestamps.
type Timestamp time.Time

func (t Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(t).UTC().Format(TimestampFormat))
}
