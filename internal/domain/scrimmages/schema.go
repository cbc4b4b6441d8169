package scrimmages

import (
	"fmt"
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// Custom field value types
const (
	FieldTypeString = "str"
	FieldTypeInt    = "int"
	FieldTypeFloat  = "float"
	FieldTypeBool   = "bool"
)

// FieldSchema describes one custom field a scrimmage type asks creators to fill in
type FieldSchema struct {
	Type     string        `json:"type"`
	Required bool          `json:"required,omitempty"`
	Default  interface{}   `json:"default,omitempty"`
	Choices  []interface{} `json:"choices,omitempty"`
	Min      *float64      `json:"min,omitempty"`
	Max      *float64      `json:"max,omitempty"`
	Regex    string        `json:"regex,omitempty"`
}

// Schema maps field names to their description
type Schema map[string]FieldSchema

// Validate checks that every field has a known type and a compilable pattern
func (s Schema) Validate() error {
	for name, field := range s {
		switch field.Type {
		case FieldTypeString, FieldTypeInt, FieldTypeFloat, FieldTypeBool:
		case "":
			return fmt.Errorf("%w: field %s has no type", ErrInvalidSchema, name)
		default:
			return fmt.Errorf("%w: field %s has unknown type %s", ErrInvalidSchema, name, field.Type)
		}
		if field.Regex != "" {
			if _, err := regexp.Compile(field.Regex); err != nil {
				return fmt.Errorf("%w: field %s: %v", ErrInvalidSchema, name, err)
			}
		}
		if field.Min != nil && field.Max != nil && *field.Min > *field.Max {
			return fmt.Errorf("%w: field %s has min > max", ErrInvalidSchema, name)
		}
	}
	return nil
}

// FieldErrors maps field names to messages
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	names := make([]string, 0, len(e))
	for name := range e {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s: %s", name, e[name]))
	}
	return fmt.Sprintf("invalid custom fields: %s", strings.Join(parts, "; "))
}

// Unwrap lets callers match FieldErrors against ErrInvalidCustomFields
func (e FieldErrors) Unwrap() error {
	return ErrInvalidCustomFields
}

// ValidateCustomFields checks values against schema and returns the coerced values
// with defaults applied. The second result is nil when everything is valid.
func ValidateCustomFields(schema Schema, values map[string]interface{}) (map[string]interface{}, FieldErrors) {
	cleaned := make(map[string]interface{}, len(schema))
	errs := FieldErrors{}

	for name := range values {
		if _, ok := schema[name]; !ok {
			errs[name] = "Unknown field."
		}
	}

	for name, field := range schema {
		raw, present := values[name]
		if !present || raw == nil {
			if field.Required {
				errs[name] = "This field is required."
			} else if field.Default != nil {
				cleaned[name] = field.Default
			}
			continue
		}

		value, msg := coerce(field, raw)
		if msg != "" {
			errs[name] = msg
			continue
		}
		cleaned[name] = value
	}

	if msg := checkAgeRange(cleaned); msg != "" {
		if _, exists := errs["min_age"]; !exists {
			errs["min_age"] = msg
		}
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return cleaned, nil
}

func coerce(field FieldSchema, raw interface{}) (interface{}, string) {
	var value interface{}

	switch field.Type {
	case FieldTypeInt:
		f, ok := toFloat(raw)
		if !ok || f != math.Trunc(f) {
			return nil, "Must be an integer."
		}
		if msg := checkBounds(field, f); msg != "" {
			return nil, msg
		}
		value = int64(f)
	case FieldTypeFloat:
		f, ok := toFloat(raw)
		if !ok {
			return nil, "Must be a number."
		}
		if msg := checkBounds(field, f); msg != "" {
			return nil, msg
		}
		value = f
	case FieldTypeBool:
		switch v := raw.(type) {
		case bool:
			value = v
		case string:
			b, err := strconv.ParseBool(v)
			if err != nil {
				return nil, "Must be a boolean."
			}
			value = b
		default:
			return nil, "Must be a boolean."
		}
	default:
		s, ok := raw.(string)
		if !ok {
			return nil, "Must be a string."
		}
		if field.Regex != "" {
			re, err := regexp.Compile(field.Regex)
			if err != nil || !re.MatchString(s) {
				return nil, fmt.Sprintf("Does not match pattern %s.", field.Regex)
			}
		}
		value = s
	}

	if len(field.Choices) > 0 && !inChoices(value, field.Choices) {
		return nil, fmt.Sprintf("Must be one of %v.", field.Choices)
	}
	return value, ""
}

func checkBounds(field FieldSchema, f float64) string {
	if field.Min != nil && f < *field.Min {
		return fmt.Sprintf("Must be greater than or equal to %v.", *field.Min)
	}
	if field.Max != nil && f > *field.Max {
		return fmt.Sprintf("Must be less than or equal to %v.", *field.Max)
	}
	return ""
}

func toFloat(raw interface{}) (float64, bool) {
	switch v := raw.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		return f, err == nil
	}
	return 0, false
}

func inChoices(value interface{}, choices []interface{}) bool {
	want := fmt.Sprint(value)
	for _, choice := range choices {
		if fmt.Sprint(choice) == want {
			return true
		}
	}
	return false
}

func checkAgeRange(cleaned map[string]interface{}) string {
	minAge, okMin := toFloatValue(cleaned["min_age"])
	maxAge, okMax := toFloatValue(cleaned["max_age"])
	if okMin && okMax && minAge > maxAge {
		return "min_age cannot be greater than max_age"
	}
	return ""
}

func toFloatValue(v interface{}) (float64, bool) {
	if v == nil {
		return 0, false
	}
	if s, ok := v.(string); ok && s == "" {
		return 0, false
	}
	return toFloat(v)
}
