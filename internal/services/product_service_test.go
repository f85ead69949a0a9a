// internal/services/product_service_test.go
package services

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/gematelier/atelier-backend/internal/apperrors"
	"github.com/gematelier/atelier-backend/internal/database"
	"github.com/gematelier/atelier-backend/internal/facets"
	"github.com/gematelier/atelier-backend/internal/models"
	"github.com/gematelier/atelier-backend/internal/utils"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, database.RunMigrations(db))
	return db
}

func newTestServices(t *testing.T) (*ProductService, *CatalogService, *gorm.DB) {
	db := setupTestDB(t)
	catalog := NewCatalogService(db)
	return NewProductService(db, catalog), catalog, db
}

func seedCategory(t *testing.T, catalog *CatalogService) *models.Category {
	t.Helper()
	category, err := catalog.CreateCategory(&CategoryRequest{Name: "Rings"})
	require.NoError(t, err)
	return category
}

func TestCreateAggregateScenario(t *testing.T) {
	svc, catalog, db := newTestServices(t)
	actor := uuid.New()
	category := seedCategory(t, catalog)

	req := &CreateAggregateRequest{
		Name:  "Ring A",
		Price: 100,
		Facets: map[string]map[string]interface{}{
			"basic": {
				"slug":       "ring-a",
				"categoryId": category.ID.String(),
			},
			"pricing": {
				"price":    100,
				"currency": "USD",
			},
		},
	}

	detail, err := svc.CreateAggregate(actor, req)
	require.NoError(t, err)
	require.NotNil(t, detail.Product)
	assert.NotEqual(t, uuid.Nil, detail.Product.ID)
	assert.Equal(t, "Ring A", detail.Product.Name)
	require.NotNil(t, detail.Product.Price)
	assert.Equal(t, "100", *detail.Product.Price)

	basic, ok := detail.Facets["basic"].(*models.ProductBasic)
	require.True(t, ok, "basic facet must be present")
	require.NotNil(t, basic.Slug)
	assert.Equal(t, "ring-a", *basic.Slug)
	assert.Equal(t, detail.Product.ID, basic.ProductID)
	assert.Equal(t, actor, basic.CreatedBy)

	pricing, ok := detail.Facets["pricing"].(*models.ProductPricing)
	require.True(t, ok)
	require.NotNil(t, pricing.Price)
	assert.Equal(t, "100", *pricing.Price)
	require.NotNil(t, pricing.Currency)
	assert.Equal(t, "USD", *pricing.Currency)

	// Absent facets stay absent, not synthesized.
	assert.Nil(t, detail.Facets["seo"])
	assert.Len(t, detail.Facets, len(facets.Names()))

	// Statistics always initialize to zero.
	assert.Zero(t, detail.Product.Rating)
	assert.Zero(t, detail.Product.ReviewsCount)
	assert.Zero(t, detail.Product.Views)

	// The identical call again conflicts on the name; no second root appears.
	_, err = svc.CreateAggregate(actor, req)
	assert.True(t, apperrors.IsConflict(err))

	var count int64
	require.NoError(t, db.Model(&models.Product{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestCreateAggregateAtomicity(t *testing.T) {
	svc, _, db := newTestServices(t)
	actor := uuid.New()

	// One malformed facet field aborts the whole aggregate.
	_, err := svc.CreateAggregate(actor, &CreateAggregateRequest{
		Name: "Ring B",
		Facets: map[string]map[string]interface{}{
			"basic":   {"slug": "ring-b"},
			"pricing": {"price": "not-a-number"},
		},
	})
	assert.True(t, apperrors.IsValidation(err))

	var products, basics int64
	require.NoError(t, db.Model(&models.Product{}).Count(&products).Error)
	require.NoError(t, db.Model(&models.ProductBasic{}).Count(&basics).Error)
	assert.Zero(t, products)
	assert.Zero(t, basics)
}

func TestCreateAggregateUnknownFacet(t *testing.T) {
	svc, _, _ := newTestServices(t)

	_, err := svc.CreateAggregate(uuid.New(), &CreateAggregateRequest{
		Name: "Ring C",
		Facets: map[string]map[string]interface{}{
			"warranty": {"months": 12},
		},
	})
	assert.True(t, apperrors.IsNotFound(err))
}

func TestCreateAggregateReferentialRejection(t *testing.T) {
	svc, catalog, db := newTestServices(t)
	actor := uuid.New()
	category := seedCategory(t, catalog)
	require.NoError(t, catalog.DeleteCategory(category.ID))

	_, err := svc.CreateAggregate(actor, &CreateAggregateRequest{
		Name: "Ring D",
		Facets: map[string]map[string]interface{}{
			"basic": {"categoryId": category.ID.String()},
		},
	})
	assert.True(t, apperrors.IsNotFound(err))

	var products int64
	require.NoError(t, db.Model(&models.Product{}).Count(&products).Error)
	assert.Zero(t, products)
}

func TestNameUniqueIndexBackstop(t *testing.T) {
	svc, _, db := newTestServices(t)

	_, err := svc.CreateAggregate(uuid.New(), &CreateAggregateRequest{Name: "Ring E"})
	require.NoError(t, err)

	// A writer that slipped past the pre-check hits the partial unique index.
	err = db.Create(&models.Product{Name: "Ring E"}).Error
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestUpdateFacetIdempotence(t *testing.T) {
	svc, _, _ := newTestServices(t)
	actor := uuid.New()

	detail, err := svc.CreateAggregate(actor, &CreateAggregateRequest{Name: "Ring F"})
	require.NoError(t, err)
	productID := detail.Product.ID

	payload := map[string]interface{}{"price": "10.00", "currency": "USD"}

	first, err := svc.UpdateFacet(actor, productID, "pricing", payload)
	require.NoError(t, err)
	firstRow := first.(*models.ProductPricing)

	second, err := svc.UpdateFacet(actor, productID, "pricing", payload)
	require.NoError(t, err)
	secondRow := second.(*models.ProductPricing)

	assert.Equal(t, firstRow.ID, secondRow.ID)
	assert.Equal(t, *firstRow.Price, *secondRow.Price)
	assert.Equal(t, "10", *secondRow.Price)
	assert.Equal(t, *firstRow.Currency, *secondRow.Currency)
	assert.Equal(t, firstRow.CreatedAt, secondRow.CreatedAt)
}

func TestUpdateFacetLazyActivation(t *testing.T) {
	svc, _, db := newTestServices(t)
	actor := uuid.New()

	detail, err := svc.CreateAggregate(actor, &CreateAggregateRequest{Name: "Ring G"})
	require.NoError(t, err)
	productID := detail.Product.ID

	// No inventory facet yet.
	assert.Nil(t, detail.Facets["inventory"])

	row, err := svc.UpdateFacet(actor, productID, "inventory", map[string]interface{}{
		"sku":            "RG-G-001",
		"quantity":       25,
		"trackInventory": true,
	})
	require.NoError(t, err)

	inventory := row.(*models.ProductInventory)
	require.NotNil(t, inventory.SKU)
	assert.Equal(t, "RG-G-001", *inventory.SKU)
	require.NotNil(t, inventory.Quantity)
	assert.Equal(t, "25", *inventory.Quantity)

	// Exactly one row per (root, facet-kind).
	var count int64
	require.NoError(t, db.Model(&models.ProductInventory{}).Where("product_id = ?", productID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestUpdateFacetUnknownNameAndRoot(t *testing.T) {
	svc, _, _ := newTestServices(t)
	actor := uuid.New()

	_, err := svc.UpdateFacet(actor, uuid.New(), "warranty", map[string]interface{}{})
	assert.True(t, apperrors.IsNotFound(err))

	_, err = svc.UpdateFacet(actor, uuid.New(), "pricing", map[string]interface{}{"price": 1})
	assert.True(t, apperrors.IsNotFound(err))
}

func TestSlugUniquenessAcrossRootsAndSelfResave(t *testing.T) {
	svc, _, _ := newTestServices(t)
	actor := uuid.New()

	first, err := svc.CreateAggregate(actor, &CreateAggregateRequest{
		Name:   "Ring H",
		Facets: map[string]map[string]interface{}{"basic": {"slug": "ring-h"}},
	})
	require.NoError(t, err)

	second, err := svc.CreateAggregate(actor, &CreateAggregateRequest{Name: "Ring I"})
	require.NoError(t, err)

	// The second root cannot steal the slug.
	_, err = svc.UpdateFacet(actor, second.Product.ID, "basic", map[string]interface{}{"slug": "ring-h"})
	assert.True(t, apperrors.IsConflict(err))

	// A no-op re-save of a root's own slug stays legal.
	_, err = svc.UpdateFacet(actor, first.Product.ID, "basic", map[string]interface{}{"slug": "ring-h"})
	assert.NoError(t, err)
}

func TestBadgeTruncationPersisted(t *testing.T) {
	svc, _, _ := newTestServices(t)
	actor := uuid.New()

	detail, err := svc.CreateAggregate(actor, &CreateAggregateRequest{Name: "Ring J"})
	require.NoError(t, err)

	badges := []interface{}{
		map[string]interface{}{"label": "Hallmarked"},
		map[string]interface{}{"label": "Certified"},
		map[string]interface{}{"label": "Handmade"},
		map[string]interface{}{"label": "Dropped A"},
		map[string]interface{}{"label": "Dropped B"},
	}

	row, err := svc.UpdateFacet(actor, detail.Product.ID, "itemDetails", map[string]interface{}{
		"trustBadges": badges,
	})
	require.NoError(t, err)

	details := row.(*models.ProductItemDetails)
	assert.JSONEq(t, `{"label":"Hallmarked"}`, string(details.TrustBadge1))
	assert.JSONEq(t, `{"label":"Certified"}`, string(details.TrustBadge2))
	assert.JSONEq(t, `{"label":"Handmade"}`, string(details.TrustBadge3))
}

func TestGetAggregateDetailNotFound(t *testing.T) {
	svc, _, _ := newTestServices(t)

	_, err := svc.GetAggregateDetail(uuid.New())
	assert.True(t, apperrors.IsNotFound(err))
}

func TestUpdateStatistic(t *testing.T) {
	svc, _, _ := newTestServices(t)
	actor := uuid.New()

	detail, err := svc.CreateAggregate(actor, &CreateAggregateRequest{Name: "Ring K"})
	require.NoError(t, err)
	productID := detail.Product.ID

	product, err := svc.UpdateStatistic(actor, productID, "rating", 4.5)
	require.NoError(t, err)
	assert.Equal(t, 4.5, product.Rating)

	product, err = svc.UpdateStatistic(actor, productID, "views", 42)
	require.NoError(t, err)
	assert.Equal(t, int64(42), product.Views)

	product, err = svc.UpdateStatistic(actor, productID, "reviewsCount", "7")
	require.NoError(t, err)
	assert.Equal(t, int64(7), product.ReviewsCount)

	_, err = svc.UpdateStatistic(actor, productID, "rating", 6)
	assert.True(t, apperrors.IsValidation(err))

	_, err = svc.UpdateStatistic(actor, productID, "views", 1.5)
	assert.True(t, apperrors.IsValidation(err))

	_, err = svc.UpdateStatistic(actor, productID, "salesCount", 1)
	assert.True(t, apperrors.IsValidation(err))
}

func TestFacetUpdateCannotTouchStatistics(t *testing.T) {
	svc, _, _ := newTestServices(t)
	actor := uuid.New()

	detail, err := svc.CreateAggregate(actor, &CreateAggregateRequest{Name: "Ring L"})
	require.NoError(t, err)

	// Statistic keys are not registered on any facet; they are dropped.
	_, err = svc.UpdateFacet(actor, detail.Product.ID, "pricing", map[string]interface{}{
		"price": 10,
		"views": 9999,
	})
	require.NoError(t, err)

	reloaded, err := svc.GetAggregateDetail(detail.Product.ID)
	require.NoError(t, err)
	assert.Zero(t, reloaded.Product.Views)
}

func TestListProducts(t *testing.T) {
	svc, _, _ := newTestServices(t)
	actor := uuid.New()

	for _, name := range []string{"Aurora Band", "Aurora Pendant", "Lumen Cuff"} {
		_, err := svc.CreateAggregate(actor, &CreateAggregateRequest{Name: name})
		require.NoError(t, err)
	}

	products, total, err := svc.ListProducts(ProductSearchParams{
		PaginationParams: utils.PaginationParams{Page: 1, Limit: 20, Search: "Aurora"},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, products, 2)
}
