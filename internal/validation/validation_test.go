package validation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testRules = []Rule{
	{Field: "name", Label: "Project name", Kind: String, Required: true, MaxLen: 10},
	{Field: "start_date", Label: "Start date", Kind: Date, Required: true},
	{Field: "end_date", Label: "End date", Kind: Date, Required: true, After: "start_date"},
	{Field: "budget", Label: "Budget", Kind: Number, Required: true, Min: MinValue(0)},
}

func validValues() map[string]any {
	return map[string]any{
		"name":       "Redesign",
		"start_date": time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		"end_date":   time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		"budget":     float64(5000),
	}
}

func TestApplyValid(t *testing.T) {
	assert.NoError(t, Apply(validValues(), testRules))
}

func TestApplyViolations(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(map[string]any)
		field   string
		message string
	}{
		{
			name:    "missing required string",
			mutate:  func(v map[string]any) { delete(v, "name") },
			field:   "name",
			message: "Project name is required",
		},
		{
			name:    "blank string counts as missing",
			mutate:  func(v map[string]any) { v["name"] = "   " },
			field:   "name",
			message: "Project name is required",
		},
		{
			name:    "string too long",
			mutate:  func(v map[string]any) { v["name"] = "a very long project name" },
			field:   "name",
			message: "Project name cannot be more than 10 characters",
		},
		{
			name:    "unparseable date",
			mutate:  func(v map[string]any) { v["start_date"] = time.Time{} },
			field:   "start_date",
			message: "Start date must be a valid date",
		},
		{
			name: "end date before start date",
			mutate: func(v map[string]any) {
				v["end_date"] = time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC)
			},
			field:   "end_date",
			message: "End date must be after start date",
		},
		{
			name: "end date equal to start date",
			mutate: func(v map[string]any) {
				v["end_date"] = v["start_date"]
			},
			field:   "end_date",
			message: "End date must be after start date",
		},
		{
			name:    "negative number",
			mutate:  func(v map[string]any) { v["budget"] = float64(-1) },
			field:   "budget",
			message: "Budget cannot be negative",
		},
		{
			name:    "wrong type for number",
			mutate:  func(v map[string]any) { v["budget"] = "lots" },
			field:   "budget",
			message: "Budget must be a number",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values := validValues()
			tt.mutate(values)

			err := Apply(values, testRules)
			require.Error(t, err)

			fieldErr, ok := err.(*FieldError)
			require.True(t, ok)
			assert.Equal(t, tt.field, fieldErr.Field)
			assert.Equal(t, tt.message, fieldErr.Message)
		})
	}
}

func TestApplyEnum(t *testing.T) {
	rules := []Rule{{Field: "role", Label: "Role", Kind: String, Enum: []string{"admin", "user"}}}

	assert.NoError(t, Apply(map[string]any{"role": "admin"}, rules))
	assert.NoError(t, Apply(map[string]any{}, rules))

	err := Apply(map[string]any{"role": "superuser"}, rules)
	require.Error(t, err)
	assert.Equal(t, "Role must be one of: admin, user", err.(*FieldError).Message)
}

func TestApplyMinLen(t *testing.T) {
	rules := []Rule{{Field: "password", Label: "Password", Kind: String, Required: true, MinLen: 8}}

	err := Apply(map[string]any{"password": "short"}, rules)
	require.Error(t, err)
	assert.Equal(t, "Password must be at least 8 characters", err.(*FieldError).Message)

	assert.NoError(t, Apply(map[string]any{"password": "long enough"}, rules))
}

func TestParseDate(t *testing.T) {
	assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), ParseDate("2024-01-15"))
	assert.Equal(t, time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC), ParseDate("2024-01-15T10:30:00Z"))
	assert.True(t, ParseDate("not a date").IsZero())
	assert.True(t, ParseDate("").IsZero())
}
