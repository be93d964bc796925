package dto

import domainErrors "github.com/polkiloo/orderdesk/internal/domain/errors"

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error  string                    `json:"error"`
	Fields []domainErrors.FieldError `json:"fields,omitempty"`
}
