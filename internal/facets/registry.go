// internal/facets/registry.go
package facets

import (
	"github.com/gematelier/atelier-backend/internal/models"
)

// The registry is the single source of truth for the facet catalog: which
// facets exist, which fields each one owns and how every field is stored.
// Adding a facet means registering metadata here, not adding code branches.

type FieldKind string

const (
	KindDecimal    FieldKind = "decimal"     // numeric or numeric-string input, stored as string
	KindBool       FieldKind = "bool"        // native bool or "true"/"false"
	KindJSONArray  FieldKind = "json_array"  // serialized to JSON text
	KindJSONObject FieldKind = "json_object" // serialized to JSON text
	KindDate       FieldKind = "date"        // ISO-8601 string, validated on the way in
	KindString     FieldKind = "string"      // bounded string
	KindEnum       FieldKind = "enum"        // closed value set
	KindRef        FieldKind = "ref"         // uuid reference into an external store
	KindBadgeSet   FieldKind = "badge_set"   // JSON array split across fixed column slots
)

// BadgeSlots is the fixed number of stored trust-badge columns. Input arrays
// longer than this are truncated; the overflow is dropped on purpose.
const BadgeSlots = 3

type FieldSpec struct {
	Name   string // payload key
	Column string // storage column
	Kind   FieldKind
	MaxLen int
	Enum   []string
	Min    *float64
	Max    *float64
	Ref    string   // collaborator kind for KindRef fields
	Slots  []string // storage columns for KindBadgeSet fields
}

type Schema struct {
	Name      string
	Fields    []FieldSpec
	newRecord func() interface{}
}

// NewRecord returns a fresh pointer to the facet's row type, suitable for
// gorm table resolution and typed reads.
func (s *Schema) NewRecord() interface{} {
	return s.newRecord()
}

func (s *Schema) Field(name string) (*FieldSpec, bool) {
	for i := range s.Fields {
		if s.Fields[i].Name == name {
			return &s.Fields[i], true
		}
	}
	return nil, false
}

// Facet names. The set is closed.
const (
	FacetBasic            = "basic"
	FacetPricing          = "pricing"
	FacetMedia            = "media"
	FacetSEO              = "seo"
	FacetAttributesTag    = "attributesTag"
	FacetVariants         = "variants"
	FacetInventory        = "inventory"
	FacetReels            = "reels"
	FacetItemDetails      = "itemDetails"
	FacetShippingPolicies = "shippingPolicies"
)

// Reference collaborator kinds consulted by the validation gate.
const (
	RefCategory       = "category"
	RefCollection     = "collection"
	RefSignaturePiece = "signature_piece"
)

func f(v float64) *float64 { return &v }

var schemas = []*Schema{
	{
		Name: FacetBasic,
		Fields: []FieldSpec{
			{Name: "slug", Column: "slug", Kind: KindString, MaxLen: 255},
			{Name: "categoryId", Column: "category_id", Kind: KindRef, Ref: RefCategory},
			{Name: "collectionId", Column: "collection_id", Kind: KindRef, Ref: RefCollection},
			{Name: "signaturePieceId", Column: "signature_piece_id", Kind: KindRef, Ref: RefSignaturePiece},
			{Name: "material", Column: "material", Kind: KindEnum, Enum: []string{"gold", "silver", "platinum", "rose_gold", "brass", "mixed"}},
			{Name: "gender", Column: "gender", Kind: KindEnum, Enum: []string{"women", "men", "unisex", "kids"}},
			{Name: "occasion", Column: "occasion", Kind: KindString, MaxLen: 100},
			{Name: "isFeatured", Column: "is_featured", Kind: KindBool},
			{Name: "launchDate", Column: "launch_date", Kind: KindDate},
		},
		newRecord: func() interface{} { return &models.ProductBasic{} },
	},
	{
		Name: FacetPricing,
		Fields: []FieldSpec{
			{Name: "price", Column: "price", Kind: KindDecimal, Min: f(0)},
			{Name: "compareAtPrice", Column: "compare_at_price", Kind: KindDecimal, Min: f(0)},
			{Name: "currency", Column: "currency", Kind: KindEnum, Enum: []string{"USD", "EUR", "GBP", "INR", "AED"}},
			{Name: "taxRate", Column: "tax_rate", Kind: KindDecimal, Min: f(0), Max: f(100)},
			{Name: "discountPercent", Column: "discount_percent", Kind: KindDecimal, Min: f(0), Max: f(100)},
			{Name: "isTaxInclusive", Column: "is_tax_inclusive", Kind: KindBool},
		},
		newRecord: func() interface{} { return &models.ProductPricing{} },
	},
	{
		Name: FacetMedia,
		Fields: []FieldSpec{
			{Name: "images", Column: "images", Kind: KindJSONArray},
			{Name: "videoUrl", Column: "video_url", Kind: KindString, MaxLen: 500},
			{Name: "altText", Column: "alt_text", Kind: KindString, MaxLen: 255},
			{Name: "thumbnail", Column: "thumbnail", Kind: KindString, MaxLen: 500},
		},
		newRecord: func() interface{} { return &models.ProductMedia{} },
	},
	{
		Name: FacetSEO,
		Fields: []FieldSpec{
			{Name: "metaTitle", Column: "meta_title", Kind: KindString, MaxLen: 70},
			{Name: "metaDescription", Column: "meta_description", Kind: KindString, MaxLen: 160},
			{Name: "metaKeywords", Column: "meta_keywords", Kind: KindJSONArray},
			{Name: "canonicalUrl", Column: "canonical_url", Kind: KindString, MaxLen: 500},
			{Name: "ogImage", Column: "og_image", Kind: KindString, MaxLen: 500},
		},
		newRecord: func() interface{} { return &models.ProductSEO{} },
	},
	{
		Name: FacetAttributesTag,
		Fields: []FieldSpec{
			{Name: "attributes", Column: "attributes", Kind: KindJSONObject},
			{Name: "tags", Column: "tags", Kind: KindJSONArray},
			{Name: "searchKeywords", Column: "search_keywords", Kind: KindJSONArray},
		},
		newRecord: func() interface{} { return &models.ProductAttributesTag{} },
	},
	{
		Name: FacetVariants,
		Fields: []FieldSpec{
			{Name: "hasVariants", Column: "has_variants", Kind: KindBool},
			{Name: "options", Column: "options", Kind: KindJSONArray},
			{Name: "variants", Column: "variants", Kind: KindJSONArray},
		},
		newRecord: func() interface{} { return &models.ProductVariants{} },
	},
	{
		Name: FacetInventory,
		Fields: []FieldSpec{
			{Name: "sku", Column: "sku", Kind: KindString, MaxLen: 100},
			{Name: "quantity", Column: "quantity", Kind: KindDecimal, Min: f(0)},
			{Name: "lowStockThreshold", Column: "low_stock_threshold", Kind: KindDecimal, Min: f(0)},
			{Name: "trackInventory", Column: "track_inventory", Kind: KindBool},
			{Name: "allowBackorder", Column: "allow_backorder", Kind: KindBool},
			{Name: "warehouseCode", Column: "warehouse_code", Kind: KindString, MaxLen: 50},
		},
		newRecord: func() interface{} { return &models.ProductInventory{} },
	},
	{
		Name: FacetReels,
		Fields: []FieldSpec{
			{Name: "videoUrl", Column: "video_url", Kind: KindString, MaxLen: 500},
			{Name: "caption", Column: "caption", Kind: KindString, MaxLen: 255},
			{Name: "durationSeconds", Column: "duration_seconds", Kind: KindDecimal, Min: f(0)},
			{Name: "isActive", Column: "is_active", Kind: KindBool},
			{Name: "postedAt", Column: "posted_at", Kind: KindDate},
		},
		newRecord: func() interface{} { return &models.ProductReels{} },
	},
	{
		Name: FacetItemDetails,
		Fields: []FieldSpec{
			{Name: "description", Column: "description", Kind: KindString},
			{Name: "careInstructions", Column: "care_instructions", Kind: KindString},
			{Name: "certification", Column: "certification", Kind: KindString, MaxLen: 255},
			{Name: "countryOfOrigin", Column: "country_of_origin", Kind: KindString, MaxLen: 100},
			{Name: "trustBadges", Kind: KindBadgeSet, Slots: []string{"trust_badge_1", "trust_badge_2", "trust_badge_3"}},
		},
		newRecord: func() interface{} { return &models.ProductItemDetails{} },
	},
	{
		Name: FacetShippingPolicies,
		Fields: []FieldSpec{
			{Name: "dispatchDays", Column: "dispatch_days", Kind: KindDecimal, Min: f(0)},
			{Name: "shippingNote", Column: "shipping_note", Kind: KindString, MaxLen: 500},
			{Name: "freeShippingAbove", Column: "free_shipping_above", Kind: KindDecimal, Min: f(0)},
			{Name: "codAvailable", Column: "cod_available", Kind: KindBool},
			{Name: "returnWindowDays", Column: "return_window_days", Kind: KindDecimal, Min: f(0)},
			{Name: "returnPolicy", Column: "return_policy", Kind: KindString},
			{Name: "exchangePolicy", Column: "exchange_policy", Kind: KindString},
		},
		newRecord: func() interface{} { return &models.ProductShippingPolicies{} },
	},
}

var registry = func() map[string]*Schema {
	m := make(map[string]*Schema, len(schemas))
	for _, s := range schemas {
		m[s.Name] = s
	}
	return m
}()

// Lookup returns the schema for a facet name.
func Lookup(name string) (*Schema, bool) {
	s, ok := registry[name]
	return s, ok
}

// Names returns the facet names in registration order.
func Names() []string {
	names := make([]string, 0, len(schemas))
	for _, s := range schemas {
		names = append(names, s.Name)
	}
	return names
}
