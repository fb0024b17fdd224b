// Package validation interprets declarative constraint tables. A table maps
// each field to its type, requiredness, bounds and cross-field rules, and
// Apply walks the table against a value map, returning the first violation
// as a FieldError with a user-facing message.
package validation

import (
	"fmt"
	"strings"
	"time"
)

type Kind int

const (
	String Kind = iota
	Number
	Date
)

// Rule is one row of a constraint table.
type Rule struct {
	Field    string
	Label    string
	Kind     Kind
	Required bool
	MaxLen   int
	MinLen   int
	Min      *float64
	After    string   // name of a date field this date must be strictly after
	Enum     []string // allowed values for a string field, empty = any
}

// FieldError is a single failed constraint.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string { return e.Message }

// MinValue returns a pointer for Rule.Min literals.
func MinValue(v float64) *float64 { return &v }

// Apply checks values against rules in table order and returns the first
// violation. Values are expected as string, float64 or time.Time depending
// on the rule kind; a missing key counts as absent.
func Apply(values map[string]any, rules []Rule) error {
	for i := range rules {
		if err := applyRule(values, &rules[i]); err != nil {
			return err
		}
	}
	return nil
}

func applyRule(values map[string]any, r *Rule) error {
	raw, ok := values[r.Field]
	if !ok || raw == nil {
		if r.Required {
			return &FieldError{r.Field, r.Label + " is required"}
		}
		return nil
	}

	switch r.Kind {
	case String:
		s, ok := raw.(string)
		if !ok {
			return &FieldError{r.Field, r.Label + " must be a string"}
		}
		s = strings.TrimSpace(s)
		if s == "" {
			if r.Required {
				return &FieldError{r.Field, r.Label + " is required"}
			}
			return nil
		}
		if r.MinLen > 0 && len(s) < r.MinLen {
			return &FieldError{r.Field, fmt.Sprintf("%s must be at least %d characters", r.Label, r.MinLen)}
		}
		if r.MaxLen > 0 && len(s) > r.MaxLen {
			return &FieldError{r.Field, fmt.Sprintf("%s cannot be more than %d characters", r.Label, r.MaxLen)}
		}
		if len(r.Enum) > 0 && !contains(r.Enum, s) {
			return &FieldError{r.Field, fmt.Sprintf("%s must be one of: %s", r.Label, strings.Join(r.Enum, ", "))}
		}

	case Number:
		n, ok := raw.(float64)
		if !ok {
			return &FieldError{r.Field, r.Label + " must be a number"}
		}
		if r.Min != nil && n < *r.Min {
			if *r.Min == 0 {
				return &FieldError{r.Field, r.Label + " cannot be negative"}
			}
			return &FieldError{r.Field, fmt.Sprintf("%s must be at least %v", r.Label, *r.Min)}
		}

	case Date:
		t, ok := raw.(time.Time)
		if !ok || t.IsZero() {
			return &FieldError{r.Field, r.Label + " must be a valid date"}
		}
		if r.After != "" {
			other, ok := values[r.After].(time.Time)
			if ok && !other.IsZero() && !t.After(other) {
				return &FieldError{r.Field, r.Label + " must be after " + labelFor(r.After)}
			}
		}
	}

	return nil
}

func labelFor(field string) string {
	return strings.ReplaceAll(field, "_", " ")
}

func contains(list []string, val string) bool {
	for _, item := range list {
		if item == val {
			return true
		}
	}
	return false
}

// ParseDate accepts the date-only form used by the API as well as RFC 3339.
// A zero time signals an unparseable value; the Date rule reports it.
func ParseDate(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t
	}
	return time.Time{}
}
