package usecase

import (
	"fmt"
	"strings"
)

// FieldError names one invalid input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries every failing field of a submission. Handlers must
// surface the whole list in one response; callers render field-level feedback
// and a fail-fast single error would force users to fix one field per round
// trip.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f.Field, f.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// validator accumulates field errors across checks.
type validator struct {
	fields []FieldError
}

func (v *validator) addf(field, format string, args ...any) {
	v.fields = append(v.fields, FieldError{Field: field, Message: fmt.Sprintf(format, args...)})
}

func (v *validator) requireNonEmpty(field, value string) {
	if strings.TrimSpace(value) == "" {
		v.addf(field, "is required")
	}
}

func (v *validator) requireNonNegative(field string, value int64) {
	if value < 0 {
		v.addf(field, "must not be negative")
	}
}

// err returns the accumulated *ValidationError, or nil when all checks passed.
func (v *validator) err() error {
	if len(v.fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: v.fields}
}
