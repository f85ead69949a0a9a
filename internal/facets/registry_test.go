// internal/facets/registry_test.go
package facets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryIsClosedSet(t *testing.T) {
	expected := []string{
		FacetBasic, FacetPricing, FacetMedia, FacetSEO, FacetAttributesTag,
		FacetVariants, FacetInventory, FacetReels, FacetItemDetails,
		FacetShippingPolicies,
	}
	assert.Equal(t, expected, Names())

	_, ok := Lookup("warranty")
	assert.False(t, ok)
}

func TestRegistryFieldMetadataIsComplete(t *testing.T) {
	for _, name := range Names() {
		schema, ok := Lookup(name)
		require.True(t, ok)
		require.NotNil(t, schema.NewRecord())

		for _, field := range schema.Fields {
			assert.NotEmpty(t, field.Name, "facet %s", name)

			if field.Kind == KindBadgeSet {
				assert.Len(t, field.Slots, BadgeSlots, "facet %s field %s", name, field.Name)
				continue
			}
			assert.NotEmpty(t, field.Column, "facet %s field %s", name, field.Name)

			if field.Kind == KindEnum {
				assert.NotEmpty(t, field.Enum, "facet %s field %s", name, field.Name)
			}
			if field.Kind == KindRef {
				assert.NotEmpty(t, field.Ref, "facet %s field %s", name, field.Name)
			}
		}
	}
}

func TestRegistrySchemasYieldDistinctRecords(t *testing.T) {
	schema := mustLookup(t, FacetBasic)
	a := schema.NewRecord()
	b := schema.NewRecord()
	assert.NotSame(t, a, b)
}

func TestFieldLookup(t *testing.T) {
	schema := mustLookup(t, FacetBasic)

	field, ok := schema.Field("slug")
	require.True(t, ok)
	assert.Equal(t, "slug", field.Column)

	_, ok = schema.Field("nope")
	assert.False(t, ok)
}
