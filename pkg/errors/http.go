package errors

import "net/http"

// HTTPError is an error that carries the response status and error code.
type HTTPError struct {
	Code       int
	Message    string
	StatusCode int
}

// NewHTTPError returns a new HTTPError. A zero statusCode means 400.
func NewHTTPError(code int, message string, statusCode int) *HTTPError {
	if statusCode == 0 {
		statusCode = http.StatusBadRequest
	}
	return &HTTPError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
	}
}

func NewUnauthorizedHTTPError() *HTTPError {
	return &HTTPError{
		Code:       401,
		Message:    "Unauthorized",
		StatusCode: http.StatusUnauthorized,
	}
}

func NewForbiddenHTTPError() *HTTPError {
	return &HTTPError{
		Code:       403,
		Message:    "Forbidden",
		StatusCode: http.StatusForbidden,
	}
}

func NewNotFoundHTTPError(message string) *HTTPError {
	return &HTTPError{
		Code:       404,
		Message:    message,
		StatusCode: http.StatusNotFound,
	}
}

func (e *HTTPError) Error() string {
	return e.Message
}
