// internal/facets/normalize_test.go
package facets

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/gematelier/atelier-backend/internal/apperrors"
)

func mustLookup(t *testing.T, name string) *Schema {
	t.Helper()
	schema, ok := Lookup(name)
	require.True(t, ok, "facet %s must be registered", name)
	return schema
}

func TestNormalizeDecimalEquivalence(t *testing.T) {
	schema := mustLookup(t, FacetPricing)

	fromNumber, err := Normalize(schema, map[string]interface{}{"price": 12.5})
	require.NoError(t, err)

	fromString, err := Normalize(schema, map[string]interface{}{"price": "12.50"})
	require.NoError(t, err)

	fromJSONNumber, err := Normalize(schema, map[string]interface{}{"price": json.Number("12.500")})
	require.NoError(t, err)

	assert.Equal(t, "12.5", fromNumber["price"])
	assert.Equal(t, fromNumber["price"], fromString["price"])
	assert.Equal(t, fromNumber["price"], fromJSONNumber["price"])
}

func TestNormalizeDecimalRejectsGarbage(t *testing.T) {
	schema := mustLookup(t, FacetPricing)

	_, err := Normalize(schema, map[string]interface{}{"price": "not-a-number"})
	assert.True(t, apperrors.IsValidation(err))

	_, err = Normalize(schema, map[string]interface{}{"price": true})
	assert.True(t, apperrors.IsValidation(err))
}

func TestNormalizeDecimalRange(t *testing.T) {
	schema := mustLookup(t, FacetPricing)

	_, err := Normalize(schema, map[string]interface{}{"price": -1})
	assert.True(t, apperrors.IsValidation(err))

	_, err = Normalize(schema, map[string]interface{}{"taxRate": 101})
	assert.True(t, apperrors.IsValidation(err))

	cols, err := Normalize(schema, map[string]interface{}{"taxRate": "18"})
	require.NoError(t, err)
	assert.Equal(t, "18", cols["tax_rate"])
}

func TestNormalizeBool(t *testing.T) {
	schema := mustLookup(t, FacetPricing)

	cols, err := Normalize(schema, map[string]interface{}{"isTaxInclusive": true})
	require.NoError(t, err)
	assert.Equal(t, true, cols["is_tax_inclusive"])

	cols, err = Normalize(schema, map[string]interface{}{"isTaxInclusive": "false"})
	require.NoError(t, err)
	assert.Equal(t, false, cols["is_tax_inclusive"])

	_, err = Normalize(schema, map[string]interface{}{"isTaxInclusive": "yes"})
	assert.True(t, apperrors.IsValidation(err))

	_, err = Normalize(schema, map[string]interface{}{"isTaxInclusive": 1})
	assert.True(t, apperrors.IsValidation(err))
}

func TestNormalizeJSONArray(t *testing.T) {
	schema := mustLookup(t, FacetMedia)

	native, err := Normalize(schema, map[string]interface{}{
		"images": []interface{}{"a.jpg", "b.jpg"},
	})
	require.NoError(t, err)

	// Pre-encoded JSON text normalizes to the same stored bytes.
	preEncoded, err := Normalize(schema, map[string]interface{}{
		"images": `["a.jpg","b.jpg"]`,
	})
	require.NoError(t, err)
	assert.Equal(t, native["images"], preEncoded["images"])

	_, err = Normalize(schema, map[string]interface{}{"images": map[string]interface{}{"a": 1}})
	assert.True(t, apperrors.IsValidation(err))

	_, err = Normalize(schema, map[string]interface{}{"images": "{broken"})
	assert.True(t, apperrors.IsValidation(err))
}

func TestNormalizeJSONObject(t *testing.T) {
	schema := mustLookup(t, FacetAttributesTag)

	cols, err := Normalize(schema, map[string]interface{}{
		"attributes": map[string]interface{}{"metal": "gold", "carat": 18},
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"metal":"gold","carat":18}`, string(cols["attributes"].(datatypes.JSON)))

	_, err = Normalize(schema, map[string]interface{}{"attributes": []interface{}{"x"}})
	assert.True(t, apperrors.IsValidation(err))
}

func TestNormalizeDate(t *testing.T) {
	schema := mustLookup(t, FacetBasic)

	cols, err := Normalize(schema, map[string]interface{}{"launchDate": "2026-03-01"})
	require.NoError(t, err)
	assert.Equal(t, "2026-03-01", cols["launch_date"])

	cols, err = Normalize(schema, map[string]interface{}{"launchDate": "2026-03-01T12:00:00Z"})
	require.NoError(t, err)
	assert.Equal(t, "2026-03-01T12:00:00Z", cols["launch_date"])

	_, err = Normalize(schema, map[string]interface{}{"launchDate": "first of March"})
	assert.True(t, apperrors.IsValidation(err))
}

func TestNormalizeEnum(t *testing.T) {
	schema := mustLookup(t, FacetBasic)

	cols, err := Normalize(schema, map[string]interface{}{"material": "rose_gold"})
	require.NoError(t, err)
	assert.Equal(t, "rose_gold", cols["material"])

	_, err = Normalize(schema, map[string]interface{}{"material": "titanium"})
	assert.True(t, apperrors.IsValidation(err))
}

func TestNormalizeStringBounds(t *testing.T) {
	schema := mustLookup(t, FacetSEO)

	long := make([]byte, 71)
	for i := range long {
		long[i] = 'x'
	}

	_, err := Normalize(schema, map[string]interface{}{"metaTitle": string(long)})
	assert.True(t, apperrors.IsValidation(err))

	cols, err := Normalize(schema, map[string]interface{}{"metaTitle": "Gold Ring"})
	require.NoError(t, err)
	assert.Equal(t, "Gold Ring", cols["meta_title"])
}

func TestNormalizeRef(t *testing.T) {
	schema := mustLookup(t, FacetBasic)

	cols, err := Normalize(schema, map[string]interface{}{
		"categoryId": "A7F2D9E1-4C3B-4A5D-9E8F-1B2C3D4E5F60",
	})
	require.NoError(t, err)
	// Canonical lowercase uuid form.
	assert.Equal(t, "a7f2d9e1-4c3b-4a5d-9e8f-1b2c3d4e5f60", cols["category_id"])

	_, err = Normalize(schema, map[string]interface{}{"categoryId": "not-a-uuid"})
	assert.True(t, apperrors.IsValidation(err))
}

func TestNormalizeBadgeTruncation(t *testing.T) {
	schema := mustLookup(t, FacetItemDetails)

	badges := []interface{}{
		map[string]interface{}{"label": "Hallmarked"},
		map[string]interface{}{"label": "Certified"},
		map[string]interface{}{"label": "Handmade"},
		map[string]interface{}{"label": "Extra One"},
		map[string]interface{}{"label": "Extra Two"},
	}

	cols, err := Normalize(schema, map[string]interface{}{"trustBadges": badges})
	require.NoError(t, err)

	assert.JSONEq(t, `{"label":"Hallmarked"}`, string(cols["trust_badge_1"].(datatypes.JSON)))
	assert.JSONEq(t, `{"label":"Certified"}`, string(cols["trust_badge_2"].(datatypes.JSON)))
	assert.JSONEq(t, `{"label":"Handmade"}`, string(cols["trust_badge_3"].(datatypes.JSON)))
}

func TestNormalizeBadgePartialFill(t *testing.T) {
	schema := mustLookup(t, FacetItemDetails)

	cols, err := Normalize(schema, map[string]interface{}{
		"trustBadges": []interface{}{map[string]interface{}{"label": "Hallmarked"}},
	})
	require.NoError(t, err)

	assert.NotNil(t, cols["trust_badge_1"])
	assert.Nil(t, cols["trust_badge_2"])
	assert.Nil(t, cols["trust_badge_3"])
}

func TestNormalizeBadgeCleared(t *testing.T) {
	schema := mustLookup(t, FacetItemDetails)

	cols, err := Normalize(schema, map[string]interface{}{"trustBadges": nil})
	require.NoError(t, err)

	for _, column := range []string{"trust_badge_1", "trust_badge_2", "trust_badge_3"} {
		value, present := cols[column]
		assert.True(t, present)
		assert.Nil(t, value)
	}
}

func TestNormalizeIgnoresUnknownKeys(t *testing.T) {
	schema := mustLookup(t, FacetPricing)

	cols, err := Normalize(schema, map[string]interface{}{
		"price":  "99",
		"rating": 5, // statistics never enter through facet payloads
		"bogus":  "x",
	})
	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{"price": "99"}, cols)
}

func TestNormalizeNullClearsColumn(t *testing.T) {
	schema := mustLookup(t, FacetBasic)

	cols, err := Normalize(schema, map[string]interface{}{"occasion": nil})
	require.NoError(t, err)

	value, present := cols["occasion"]
	assert.True(t, present)
	assert.Nil(t, value)
}

func TestNormalizeIsIdempotent(t *testing.T) {
	schema := mustLookup(t, FacetBasic)
	raw := map[string]interface{}{
		"slug":       "ring-a",
		"material":   "gold",
		"isFeatured": "true",
		"launchDate": "2026-01-15",
	}

	first, err := Normalize(schema, raw)
	require.NoError(t, err)
	second, err := Normalize(schema, raw)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
