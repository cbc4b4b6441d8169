//go:build unit
// +build unit

package scrimmages

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(f float64) *float64 { return &f }

func testSchema() Schema {
	return Schema{
		"player_level": {Type: FieldTypeString, Required: true, Choices: []interface{}{"Beginner", "Intermediate", "Pro"}},
		"min_age":      {Type: FieldTypeInt, Min: floatPtr(0), Max: floatPtr(99)},
		"max_age":      {Type: FieldTypeInt, Min: floatPtr(0), Max: floatPtr(99)},
		"indoor":       {Type: FieldTypeBool, Default: true},
		"court_code":   {Type: FieldTypeString, Regex: `^[A-Z]{2}\d$`},
		"net_height":   {Type: FieldTypeFloat},
	}
}

func TestValidateCustomFields(t *testing.T) {
	tests := []struct {
		name      string
		values    map[string]interface{}
		wantField string
		wantMsg   string
	}{
		{"missing required", map[string]interface{}{}, "player_level", "This field is required."},
		{"bad choice", map[string]interface{}{"player_level": "Legend"}, "player_level", "Must be one of [Beginner Intermediate Pro]."},
		{"not an integer", map[string]interface{}{"player_level": "Pro", "min_age": 12.5}, "min_age", "Must be an integer."},
		{"below min", map[string]interface{}{"player_level": "Pro", "min_age": -1.0}, "min_age", "Must be greater than or equal to 0."},
		{"pattern", map[string]interface{}{"player_level": "Pro", "court_code": "abc"}, "court_code", `Does not match pattern ^[A-Z]{2}\d$.`},
		{"bool type", map[string]interface{}{"player_level": "Pro", "indoor": 3.0}, "indoor", "Must be a boolean."},
		{"unknown field", map[string]interface{}{"player_level": "Pro", "color": "red"}, "color", "Unknown field."},
		{"age range", map[string]interface{}{"player_level": "Pro", "min_age": 30.0, "max_age": 18.0}, "min_age", "min_age cannot be greater than max_age"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cleaned, errs := ValidateCustomFields(testSchema(), tt.values)
			assert.Nil(t, cleaned)
			require.NotNil(t, errs)
			assert.Equal(t, tt.wantMsg, errs[tt.wantField])
			assert.True(t, errors.Is(errs, ErrInvalidCustomFields))
		})
	}
}

func TestValidateCustomFields_Cleaned(t *testing.T) {
	cleaned, errs := ValidateCustomFields(testSchema(), map[string]interface{}{
		"player_level": "Pro",
		"min_age":      16.0,
		"max_age":      "40",
		"court_code":   "AB1",
		"net_height":   2.43,
	})
	require.Nil(t, errs)

	assert.Equal(t, "Pro", cleaned["player_level"])
	assert.Equal(t, int64(16), cleaned["min_age"])
	assert.Equal(t, int64(40), cleaned["max_age"])
	assert.Equal(t, true, cleaned["indoor"])
	assert.Equal(t, 2.43, cleaned["net_height"])
}

func TestSchema_Validate(t *testing.T) {
	assert.NoError(t, testSchema().Validate())

	assert.ErrorIs(t, Schema{"x": {Type: "date"}}.Validate(), ErrInvalidSchema)
	assert.ErrorIs(t, Schema{"x": {}}.Validate(), ErrInvalidSchema)
	assert.ErrorIs(t, Schema{"x": {Type: FieldTypeString, Regex: "("}}.Validate(), ErrInvalidSchema)
	assert.ErrorIs(t, Schema{"x": {Type: FieldTypeInt, Min: floatPtr(5), Max: floatPtr(1)}}.Validate(), ErrInvalidSchema)
}
