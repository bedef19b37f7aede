package domain

import (
	validation "github.com/jellydator/validation"

	customValidation "github.com/allisson/resourceapi/internal/validation"
)

// FieldKind is the JSON type accepted for a schema field.
type FieldKind string

const (
	KindString  FieldKind = "string"
	KindNumber  FieldKind = "number"
	KindInteger FieldKind = "integer"
	KindBool    FieldKind = "bool"
	KindUUID    FieldKind = "uuid"
)

// Field describes one attribute of a resource type.
type Field struct {
	Name        string
	Kind        FieldKind
	Required    bool
	NonNegative bool
	MaxLength   int
}

// Schema describes a resource type: its canonical name, its fields and the field used to
// identify a record in create events.
type Schema struct {
	Name             string
	IdentifyingField string
	Fields           []Field
}

// Sanitize returns the subset of input naming declared fields. Unknown keys, including
// "_id", are dropped.
func (s *Schema) Sanitize(input map[string]any) map[string]any {
	out := make(map[string]any, len(s.Fields))
	for _, field := range s.Fields {
		if value, ok := input[field.Name]; ok {
			out[field.Name] = value
		}
	}
	return out
}

// Validate checks a complete record against the schema.
func (s *Schema) Validate(fields map[string]any) error {
	keys := make([]*validation.KeyRules, 0, len(s.Fields))
	for _, field := range s.Fields {
		keys = append(keys, field.keyRules())
	}

	err := validation.Validate(fields, validation.Map(keys...).AllowExtraKeys())
	return customValidation.WrapValidationError(err)
}

// Identify returns the value of the identifying field, or nil when absent.
func (s *Schema) Identify(fields map[string]any) any {
	return fields[s.IdentifyingField]
}

func (f Field) keyRules() *validation.KeyRules {
	rules := []validation.Rule{}
	if f.Required {
		rules = append(rules, validation.Required)
	}

	switch f.Kind {
	case KindString:
		rules = append(rules, customValidation.String)
	case KindNumber:
		rules = append(rules, customValidation.Number)
	case KindInteger:
		rules = append(rules, customValidation.Integer)
	case KindBool:
		rules = append(rules, customValidation.Bool)
	case KindUUID:
		rules = append(rules, customValidation.UUID)
	}

	if f.NonNegative {
		rules = append(rules, customValidation.NonNegative)
	}
	if f.MaxLength > 0 {
		rules = append(rules, validation.By(maxLength(f.MaxLength)))
	}

	key := validation.Key(f.Name, rules...)
	if !f.Required {
		key = key.Optional()
	}
	return key
}

func maxLength(limit int) validation.RuleFunc {
	return func(value any) error {
		s, ok := value.(string)
		if !ok {
			return nil
		}
		return validation.Length(0, limit).Validate(s)
	}
}
