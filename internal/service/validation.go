package service

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// FieldError describes one invalid input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError is returned when client input is malformed or out of range.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

type validator struct {
	fields []FieldError
}

func (v *validator) add(field, format string, args ...any) {
	v.fields = append(v.fields, FieldError{Field: field, Message: fmt.Sprintf(format, args...)})
}

func (v *validator) length(field, value string, min, max int) {
	n := utf8.RuneCountInString(value)
	if n < min || n > max {
		if min == 0 {
			v.add(field, "must be at most %d characters", max)
			return
		}
		v.add(field, "must be between %d and %d characters", min, max)
	}
}

func (v *validator) err() error {
	if len(v.fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: v.fields}
}

const maxSanitizedLen = 500

// sanitize strips angle brackets, trims and caps the value at 500 characters.
func sanitize(s string) string {
	s = strings.NewReplacer("<", "", ">", "").Replace(s)
	s = strings.TrimSpace(s)
	if utf8.RuneCountInString(s) > maxSanitizedLen {
		s = string([]rune(s)[:maxSanitizedLen])
	}
	return s
}
