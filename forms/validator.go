// Package forms holds the create/update payloads the CLI submits and
// their client-side validation, so obviously-bad input fails locally
// with field-level messages before a request is made.
package forms

import (
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/homemanager/hmctl/internal/errors"
)

var (
	once     sync.Once
	validate *validator.Validate
)

// engine returns the shared validator, initialized once.
func engine() *validator.Validate {
	once.Do(func() {
		validate = validator.New()
		validate.SetTagName("binding")
	})
	return validate
}

// FieldError is one field-level validation failure, rendered inline
// next to the offending flag or form field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationErrors aggregates per-field failures. It wraps
// errors.ErrValidation so callers can branch with errors.Is.
type ValidationErrors struct {
	Fields []FieldError
}

func (v *ValidationErrors) Error() string {
	parts := make([]string, 0, len(v.Fields))
	for _, f := range v.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

func (v *ValidationErrors) Unwrap() error {
	return errors.ErrValidation
}

// Validate checks a form struct against its binding tags and converts
// the library's errors into field-level messages.
func Validate(form any) error {
	err := engine().Struct(form)
	if err == nil {
		return nil
	}

	invalid, ok := err.(validator.ValidationErrors)
	if !ok {
		return errors.Wrapf(err, "%w", errors.ErrValidation)
	}

	result := &ValidationErrors{}
	for _, fieldErr := range invalid {
		result.Fields = append(result.Fields, FieldError{
			Field:   fieldErr.Field(),
			Message: messageFor(fieldErr),
		})
	}
	return result
}

func messageFor(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return "must be at least " + fieldErr.Param()
	case "max":
		return "must be at most " + fieldErr.Param()
	case "gt":
		return "must be greater than " + fieldErr.Param()
	case "gte":
		return "must be at least " + fieldErr.Param()
	case "oneof":
		return "must be one of: " + fieldErr.Param()
	case "datetime":
		return "must be a date in YYYY-MM-DD form"
	case "e164":
		return "must be a phone number in international form"
	default:
		return "is invalid (" + fieldErr.Tag() + ")"
	}
}
