// internal/i18n/keys.go
package i18n

// Translation keys constants
const (
	// Authentication
	KeyAuthRequired           = "auth.required"
	KeyAuthInvalidToken       = "auth.invalid_token"
	KeyAuthTokenExpired       = "auth.token_expired"
	KeyAuthInvalidCredentials = "auth.invalid_credentials"
	KeyAdminAccessDenied      = "auth.admin_access_denied"

	// Products
	KeyProductNotFound = "product.not_found"
	KeyProductCreated  = "product.created"
	KeyFacetNotFound   = "facet.not_found"
	KeyFacetUpdated    = "facet.updated"

	// Catalog
	KeyCategoryNotFound       = "category.not_found"
	KeyCollectionNotFound     = "collection.not_found"
	KeySignaturePieceNotFound = "signature_piece.not_found"

	// Validation
	KeyValidationInvalid = "validation.invalid"
)
