package errors

import (
	"fmt"
	"strings"
)

// ValidationError reports a rejected request field.
type ValidationError struct {
	Code     int      `json:"code"`
	Field    string   `json:"field"`
	Messages []string `json:"messages"`
}

func NewValidationError(code int, field string, messages ...string) *ValidationError {
	return &ValidationError{
		Code:     code,
		Field:    field,
		Messages: messages,
	}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, strings.Join(e.Messages, ", "))
}

// ValidationErrorCollector gathers every field error of one request.
type ValidationErrorCollector struct {
	errors []*ValidationError
}

func NewValidationErrorCollector() *ValidationErrorCollector {
	return &ValidationErrorCollector{errors: make([]*ValidationError, 0)}
}

func (c *ValidationErrorCollector) Add(err *ValidationError) *ValidationErrorCollector {
	c.errors = append(c.errors, err)
	return c
}

func (c *ValidationErrorCollector) HasError() bool {
	return len(c.errors) > 0
}

func (c *ValidationErrorCollector) Errors() []*ValidationError {
	return c.errors
}

func (c *ValidationErrorCollector) Error() string {
	msgs := make([]string, 0, len(c.errors))
	for _, err := range c.errors {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}
