package controllers

import (
	"errors"
	"fmt"
	"strings"
)

var ErrNoPermission = errors.New("no permission for this action")

// FieldError names one offending field in an intake payload.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError collects malformed fields of an order-intake request.
// The order is rejected as a whole and nothing is persisted.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		names = append(names, f.Field)
	}
	return "validation failed: " + strings.Join(names, ", ")
}

// IntegrityError means the payload was well-formed but referenced records
// that do not exist, e.g. an unknown product id.
type IntegrityError struct {
	Message string
}

func (e *IntegrityError) Error() string {
	return e.Message
}

func integrityErrorf(format string, args ...interface{}) *IntegrityError {
	return &IntegrityError{Message: fmt.Sprintf(format, args...)}
}
