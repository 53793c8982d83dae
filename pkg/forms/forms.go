// Package forms reads operator input and converts it into typed payload values.
package forms

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrNotANumber is wrapped by the optional parsers when non-blank text is not numeric.
var ErrNotANumber = errors.New("not a number")

// Source is a read-only set of named input values. url.Values satisfies it.
type Source interface {
	Get(key string) string
	Has(key string) bool
}

// Values is a Source backed by a plain map.
type Values map[string]string

func (v Values) Get(key string) string { return v[key] }

func (v Values) Has(key string) bool {
	_, ok := v[key]
	return ok
}

// ValidationError is raised before any request is sent.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Invalid builds a ValidationError with a custom message.
func Invalid(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// Missing builds the "<field> is required" ValidationError.
func Missing(field string) *ValidationError {
	return &ValidationError{Field: field, Message: field + " is required"}
}

// Text returns the trimmed value under key.
func Text(src Source, key string) string {
	return strings.TrimSpace(src.Get(key))
}

// Flag reports whether the value under key is exactly "true".
func Flag(src Source, key string) bool {
	return src.Get(key) == "true"
}

// ParseOptionalInteger returns nil for blank input.
func ParseOptionalInteger(raw string) (*int64, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil, nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("parse integer %q: %w", s, ErrNotANumber)
	}
	return &n, nil
}

// ParseOptionalNumber returns nil for blank input. NaN and infinities are rejected.
func ParseOptionalNumber(raw string) (*float64, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, fmt.Errorf("parse number %q: %w", s, ErrNotANumber)
	}
	return &f, nil
}

// ParseRequiredInteger fails with "<field> is required" on blank or non-numeric input.
func ParseRequiredInteger(raw, field string) (int64, error) {
	n, err := ParseOptionalInteger(raw)
	if err != nil || n == nil {
		return 0, Missing(field)
	}
	return *n, nil
}

// ParseRequiredNumber fails with "<field> is required" on blank or non-numeric input.
func ParseRequiredNumber(raw, field string) (float64, error) {
	f, err := ParseOptionalNumber(raw)
	if err != nil || f == nil {
		return 0, Missing(field)
	}
	return *f, nil
}

// OptionalInteger parses the value under key for a payload field that may be null.
// Non-numeric text is reported as a ValidationError naming field.
func OptionalInteger(src Source, key, field string) (any, error) {
	n, err := ParseOptionalInteger(src.Get(key))
	if err != nil {
		return nil, Invalid(field, field+" must be a whole number")
	}
	if n == nil {
		return nil, nil
	}
	return *n, nil
}
