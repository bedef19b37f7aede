package validation

import (
	"encoding/json"
	"math"

	"github.com/google/uuid"
	validation "github.com/jellydator/validation"
)

// Rules for dynamically typed values decoded from JSON documents. A nil value passes
// every rule; presence is checked with validation.NotNil or validation.Required.

// String validates that the value is a JSON string.
var String = validation.By(func(value any) error {
	if value == nil {
		return nil
	}
	if _, ok := value.(string); !ok {
		return validation.NewError("validation_type_string", "must be a string")
	}
	return nil
})

// Bool validates that the value is a JSON boolean.
var Bool = validation.By(func(value any) error {
	if value == nil {
		return nil
	}
	if _, ok := value.(bool); !ok {
		return validation.NewError("validation_type_bool", "must be a boolean")
	}
	return nil
})

// Number validates that the value is a JSON number.
var Number = validation.By(func(value any) error {
	if value == nil {
		return nil
	}
	if _, ok := ToFloat(value); !ok {
		return validation.NewError("validation_type_number", "must be a number")
	}
	return nil
})

// Integer validates that the value is a JSON number without a fractional part.
var Integer = validation.By(func(value any) error {
	if value == nil {
		return nil
	}
	f, ok := ToFloat(value)
	if !ok || f != math.Trunc(f) {
		return validation.NewError("validation_type_integer", "must be an integer")
	}
	return nil
})

// UUID validates that the value is a string holding a UUID.
var UUID = validation.By(func(value any) error {
	if value == nil {
		return nil
	}
	s, ok := value.(string)
	if !ok {
		return validation.NewError("validation_type_uuid", "must be a valid UUID")
	}
	if _, err := uuid.Parse(s); err != nil {
		return validation.NewError("validation_type_uuid", "must be a valid UUID")
	}
	return nil
})

// NonNegative validates that a numeric value is zero or greater.
var NonNegative = validation.By(func(value any) error {
	f, ok := ToFloat(value)
	if !ok {
		return nil
	}
	if f < 0 {
		return validation.NewError("validation_non_negative", "must be no less than 0")
	}
	return nil
})

// ToFloat converts the numeric representations produced by encoding/json into a float64.
func ToFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}
