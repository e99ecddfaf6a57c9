// Package validate collects field-level validation failures instead of
// failing on the first one, so the boundary can report every problem with
// a payload at once.
package validate

import (
	"fmt"
	"strings"
)

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type Errors []FieldError

func (e Errors) Error() string {
	parts := make([]string, len(e))
	for i, fe := range e {
		parts[i] = fe.Field + ": " + fe.Message
	}
	return strings.Join(parts, "; ")
}

func (e *Errors) Add(field, message string) {
	*e = append(*e, FieldError{Field: field, Message: message})
}

// Required flags empty strings (after trimming) as missing.
func (e *Errors) Required(field, value string) {
	if strings.TrimSpace(value) == "" {
		e.Add(field, "is required")
	}
}

func (e *Errors) MaxLen(field, value string, max int) {
	if len(value) > max {
		e.Add(field, fmt.Sprintf("must be at most %d characters", max))
	}
}

// OneOf flags values outside the allowed set; empty values are skipped so
// optional fields can default elsewhere.
func (e *Errors) OneOf(field, value string, allowed ...string) {
	if value == "" {
		return
	}
	for _, a := range allowed {
		if value == a {
			return
		}
	}
	e.Add(field, "must be one of: "+strings.Join(allowed, ", "))
}
