// internal/facets/normalize.go
package facets

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"

	"github.com/gematelier/atelier-backend/internal/apperrors"
)

// Normalize converts a raw facet payload into canonical column values for
// the facet's storage row. It is a pure function: identical input always
// yields identical output, so re-submitting the same form is a no-op on
// stored data. Payload keys not registered for the facet are ignored; a
// present key with a null value clears the column.
func Normalize(schema *Schema, raw map[string]interface{}) (map[string]interface{}, error) {
	out := make(map[string]interface{}, len(raw))

	for i := range schema.Fields {
		field := &schema.Fields[i]
		value, present := raw[field.Name]
		if !present {
			continue
		}

		if field.Kind == KindBadgeSet {
			if err := normalizeBadgeSet(field, value, out); err != nil {
				return nil, err
			}
			continue
		}

		if value == nil {
			out[field.Column] = nil
			continue
		}

		normalized, err := normalizeValue(field, value)
		if err != nil {
			return nil, err
		}
		out[field.Column] = normalized
	}

	return out, nil
}

func normalizeValue(field *FieldSpec, value interface{}) (interface{}, error) {
	switch field.Kind {
	case KindDecimal:
		return CanonicalDecimal(field.Name, value, field.Min, field.Max)
	case KindBool:
		return canonicalBool(field.Name, value)
	case KindJSONArray:
		return canonicalJSON(field.Name, value, true)
	case KindJSONObject:
		return canonicalJSON(field.Name, value, false)
	case KindDate:
		return canonicalDate(field.Name, value)
	case KindString:
		return canonicalString(field, value)
	case KindEnum:
		return canonicalEnum(field, value)
	case KindRef:
		return canonicalRef(field.Name, value)
	}
	return nil, apperrors.Validation(field.Name, "unsupported field kind")
}

// CanonicalDecimal accepts numeric or numeric-string input and returns the
// canonical string form. Trailing zeros are trimmed, so 12.5 and "12.50"
// normalize to the same stored representation.
func CanonicalDecimal(name string, value interface{}, min, max *float64) (string, error) {
	var d decimal.Decimal
	var err error

	switch v := value.(type) {
	case float64:
		d = decimal.NewFromFloat(v)
	case int:
		d = decimal.NewFromInt(int64(v))
	case int64:
		d = decimal.NewFromInt(v)
	case json.Number:
		d, err = decimal.NewFromString(v.String())
	case string:
		d, err = decimal.NewFromString(strings.TrimSpace(v))
	default:
		return "", apperrors.Validation(name, "must be a number or numeric string")
	}
	if err != nil {
		return "", apperrors.Validation(name, "invalid numeric value")
	}

	if min != nil && d.LessThan(decimal.NewFromFloat(*min)) {
		return "", apperrors.Validation(name, fmt.Sprintf("must be at least %v", *min))
	}
	if max != nil && d.GreaterThan(decimal.NewFromFloat(*max)) {
		return "", apperrors.Validation(name, fmt.Sprintf("must be at most %v", *max))
	}

	return d.String(), nil
}

func canonicalBool(name string, value interface{}) (bool, error) {
	switch v := value.(type) {
	case bool:
		return v, nil
	case string:
		if v == "true" {
			return true, nil
		}
		if v == "false" {
			return false, nil
		}
	}
	return false, apperrors.Validation(name, `must be a boolean or "true"/"false"`)
}

func canonicalJSON(name string, value interface{}, wantArray bool) (datatypes.JSON, error) {
	decoded := value

	// Pre-encoded JSON text is accepted and decoded first so that key order
	// and whitespace differences do not produce distinct stored values.
	if s, ok := value.(string); ok {
		if err := json.Unmarshal([]byte(s), &decoded); err != nil {
			return nil, apperrors.Validation(name, "invalid JSON text")
		}
	}

	if wantArray {
		if _, ok := decoded.([]interface{}); !ok {
			return nil, apperrors.Validation(name, "must be a JSON array")
		}
	} else {
		if _, ok := decoded.(map[string]interface{}); !ok {
			return nil, apperrors.Validation(name, "must be a JSON object")
		}
	}

	encoded, err := json.Marshal(decoded)
	if err != nil {
		return nil, apperrors.Validation(name, "value is not serializable")
	}
	return datatypes.JSON(encoded), nil
}

var dateLayouts = []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"}

func canonicalDate(name string, value interface{}) (string, error) {
	s, ok := value.(string)
	if !ok {
		return "", apperrors.Validation(name, "must be an ISO-8601 date string")
	}
	for _, layout := range dateLayouts {
		if _, err := time.Parse(layout, s); err == nil {
			return s, nil
		}
	}
	return "", apperrors.Validation(name, "unparsable date: "+s)
}

func canonicalString(field *FieldSpec, value interface{}) (string, error) {
	s, ok := value.(string)
	if !ok {
		return "", apperrors.Validation(field.Name, "must be a string")
	}
	if field.MaxLen > 0 && len(s) > field.MaxLen {
		return "", apperrors.Validation(field.Name, fmt.Sprintf("must be at most %d characters", field.MaxLen))
	}
	return s, nil
}

func canonicalEnum(field *FieldSpec, value interface{}) (string, error) {
	s, ok := value.(string)
	if !ok {
		return "", apperrors.Validation(field.Name, "must be a string")
	}
	for _, allowed := range field.Enum {
		if s == allowed {
			return s, nil
		}
	}
	return "", apperrors.Validation(field.Name, "must be one of "+strings.Join(field.Enum, ", "))
}

func canonicalRef(name string, value interface{}) (string, error) {
	s, ok := value.(string)
	if !ok {
		return "", apperrors.Validation(name, "must be a uuid string")
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return "", apperrors.Validation(name, "invalid uuid: "+s)
	}
	return id.String(), nil
}

// normalizeBadgeSet spreads a JSON array across the field's fixed column
// slots in order. Entries beyond the last slot are dropped; slots without an
// entry are cleared. The truncation is deliberate and load-bearing.
func normalizeBadgeSet(field *FieldSpec, value interface{}, out map[string]interface{}) error {
	if value == nil {
		for _, column := range field.Slots {
			out[column] = nil
		}
		return nil
	}

	decoded := value
	if s, ok := value.(string); ok {
		if err := json.Unmarshal([]byte(s), &decoded); err != nil {
			return apperrors.Validation(field.Name, "invalid JSON text")
		}
	}

	entries, ok := decoded.([]interface{})
	if !ok {
		return apperrors.Validation(field.Name, "must be a JSON array")
	}

	for i, column := range field.Slots {
		if i >= len(entries) {
			out[column] = nil
			continue
		}
		encoded, err := json.Marshal(entries[i])
		if err != nil {
			return apperrors.Validation(field.Name, "entry is not serializable")
		}
		out[column] = datatypes.JSON(encoded)
	}

	return nil
}
