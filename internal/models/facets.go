// internal/models/facets.go
package models

import (
	"gorm.io/datatypes"
)

// Facet rows. Every field is nullable so that "present with empty fields"
// stays distinct from an absent row. Decimal-valued fields are stored as
// strings to avoid precision loss across the storage boundary; array and
// object values are stored as JSON text.

type ProductBasic struct {
	FacetBase
	Slug             *string `json:"slug" gorm:"size:255;uniqueIndex"`
	CategoryID       *string `json:"category_id" gorm:"type:uuid"`
	CollectionID     *string `json:"collection_id" gorm:"type:uuid"`
	SignaturePieceID *string `json:"signature_piece_id" gorm:"type:uuid"`
	Material         *string `json:"material" gorm:"size:30"`
	Gender           *string `json:"gender" gorm:"size:20"`
	Occasion         *string `json:"occasion" gorm:"size:100"`
	IsFeatured       *bool   `json:"is_featured"`
	LaunchDate       *string `json:"launch_date" gorm:"size:40"`
}

type ProductPricing struct {
	FacetBase
	Price           *string `json:"price" gorm:"size:40"`
	CompareAtPrice  *string `json:"compare_at_price" gorm:"size:40"`
	Currency        *string `json:"currency" gorm:"size:3"`
	TaxRate         *string `json:"tax_rate" gorm:"size:40"`
	DiscountPercent *string `json:"discount_percent" gorm:"size:40"`
	IsTaxInclusive  *bool   `json:"is_tax_inclusive"`
}

type ProductMedia struct {
	FacetBase
	Images    datatypes.JSON `json:"images"`
	VideoURL  *string        `json:"video_url" gorm:"size:500"`
	AltText   *string        `json:"alt_text" gorm:"size:255"`
	Thumbnail *string        `json:"thumbnail" gorm:"size:500"`
}

type ProductSEO struct {
	FacetBase
	MetaTitle       *string        `json:"meta_title" gorm:"size:70"`
	MetaDescription *string        `json:"meta_description" gorm:"size:160"`
	MetaKeywords    datatypes.JSON `json:"meta_keywords"`
	CanonicalURL    *string        `json:"canonical_url" gorm:"size:500"`
	OGImage         *string        `json:"og_image" gorm:"column:og_image;size:500"`
}

type ProductAttributesTag struct {
	FacetBase
	Attributes     datatypes.JSON `json:"attributes"`
	Tags           datatypes.JSON `json:"tags"`
	SearchKeywords datatypes.JSON `json:"search_keywords"`
}

type ProductVariants struct {
	FacetBase
	HasVariants *bool          `json:"has_variants"`
	Options     datatypes.JSON `json:"options"`
	Variants    datatypes.JSON `json:"variants"`
}

type ProductInventory struct {
	FacetBase
	SKU               *string `json:"sku" gorm:"column:sku;size:100"`
	Quantity          *string `json:"quantity" gorm:"size:40"`
	LowStockThreshold *string `json:"low_stock_threshold" gorm:"size:40"`
	TrackInventory    *bool   `json:"track_inventory"`
	AllowBackorder    *bool   `json:"allow_backorder"`
	WarehouseCode     *string `json:"warehouse_code" gorm:"size:50"`
}

type ProductReels struct {
	FacetBase
	VideoURL        *string `json:"video_url" gorm:"size:500"`
	Caption         *string `json:"caption" gorm:"size:255"`
	DurationSeconds *string `json:"duration_seconds" gorm:"size:40"`
	IsActive        *bool   `json:"is_active"`
	PostedAt        *string `json:"posted_at" gorm:"size:40"`
}

type ProductItemDetails struct {
	FacetBase
	Description      *string        `json:"description" gorm:"type:text"`
	CareInstructions *string        `json:"care_instructions" gorm:"type:text"`
	Certification    *string        `json:"certification" gorm:"size:255"`
	CountryOfOrigin  *string        `json:"country_of_origin" gorm:"size:100"`
	TrustBadge1      datatypes.JSON `json:"trust_badge_1" gorm:"column:trust_badge_1"`
	TrustBadge2      datatypes.JSON `json:"trust_badge_2" gorm:"column:trust_badge_2"`
	TrustBadge3      datatypes.JSON `json:"trust_badge_3" gorm:"column:trust_badge_3"`
}

type ProductShippingPolicies struct {
	FacetBase
	DispatchDays      *string `json:"dispatch_days" gorm:"size:40"`
	ShippingNote      *string `json:"shipping_note" gorm:"size:500"`
	FreeShippingAbove *string `json:"free_shipping_above" gorm:"size:40"`
	CODAvailable      *bool   `json:"cod_available" gorm:"column:cod_available"`
	ReturnWindowDays  *string `json:"return_window_days" gorm:"size:40"`
	ReturnPolicy      *string `json:"return_policy" gorm:"type:text"`
	ExchangePolicy    *string `json:"exchange_policy" gorm:"type:text"`
}
