// internal/services/product_service.go
package services

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/gematelier/atelier-backend/internal/apperrors"
	"github.com/gematelier/atelier-backend/internal/facets"
	"github.com/gematelier/atelier-backend/internal/models"
	"github.com/gematelier/atelier-backend/internal/utils"
)

// ProductService owns the composite product aggregate: one root row plus up
// to ten independently-schemaed facet rows. Creation is transactional for
// the whole aggregate; after creation facets move one at a time through the
// upsert path. Sibling facet updates are deliberately not joined into one
// transaction, so two callers racing on different facets can expose a
// transiently mixed aggregate.
type ProductService struct {
	db      *gorm.DB
	catalog *CatalogService
}

type CreateAggregateRequest struct {
	Name             string                            `json:"name" validate:"required,min=2,max=255"`
	ShortDescription string                            `json:"short_description" validate:"max=500"`
	Price            interface{}                       `json:"price"`
	Image            string                            `json:"image" validate:"max=500"`
	Facets           map[string]map[string]interface{} `json:"facets"`
}

// AggregateDetail maps every registered facet name to its row, or nil when
// the facet is absent. Absent facets are never synthesized.
type AggregateDetail struct {
	Product *models.Product        `json:"product"`
	Facets  map[string]interface{} `json:"facets"`
}

func NewProductService(db *gorm.DB, catalog *CatalogService) *ProductService {
	return &ProductService{
		db:      db,
		catalog: catalog,
	}
}

var zero = 0.0

// CreateAggregate normalizes and validates the root plus every supplied
// facet payload, then writes the whole aggregate in one transaction: root
// first, facet rows after, all keyed to the generated root id. Any insert
// failure rolls the whole aggregate back. Statistics columns start at zero
// no matter what the caller sent; unregistered payload keys never reach
// storage.
func (s *ProductService) CreateAggregate(actorID uuid.UUID, req *CreateAggregateRequest) (*AggregateDetail, error) {
	if err := requestValidationError(utils.ValidateStruct(req)); err != nil {
		return nil, err
	}

	var rootPrice *string
	if req.Price != nil {
		canonical, err := facets.CanonicalDecimal("price", req.Price, &zero, nil)
		if err != nil {
			return nil, err
		}
		rootPrice = &canonical
	}

	normalized, err := s.normalizeFacets(req.Facets)
	if err != nil {
		return nil, err
	}

	if err := s.runCreateGate(req.Name, normalized); err != nil {
		return nil, err
	}

	product := &models.Product{
		Name:             req.Name,
		ShortDescription: req.ShortDescription,
		Price:            rootPrice,
		Image:            req.Image,
		CreatedBy:        actorID,
		UpdatedBy:        actorID,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(product).Error; err != nil {
			return remapStorageError("product", err)
		}

		now := time.Now()
		for _, name := range facets.Names() {
			cols, supplied := normalized[name]
			if !supplied {
				continue
			}
			schema, _ := facets.Lookup(name)

			row := make(map[string]interface{}, len(cols)+6)
			for column, value := range cols {
				row[column] = value
			}
			row["id"] = uuid.New()
			row["product_id"] = product.ID
			row["created_by"] = actorID
			row["updated_by"] = actorID
			row["created_at"] = now
			row["updated_at"] = now

			if err := tx.Model(schema.NewRecord()).Create(row).Error; err != nil {
				return remapStorageError(name, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.GetAggregateDetail(product.ID)
}

// UpdateFacet creates or updates a single facet row for an existing root.
// The write is idempotent on data: identical input twice leaves identical
// stored fields and only advances the update stamp. Concurrent updates to
// the same facet are last-write-wins; there is no version token.
func (s *ProductService) UpdateFacet(actorID, productID uuid.UUID, facetName string, raw map[string]interface{}) (interface{}, error) {
	schema, ok := facets.Lookup(facetName)
	if !ok {
		return nil, apperrors.NotFound("facet")
	}

	if _, err := s.fetchProduct(productID); err != nil {
		return nil, err
	}

	cols, err := facets.Normalize(schema, raw)
	if err != nil {
		return nil, err
	}

	if err := s.runFacetGate(schema, cols, &productID); err != nil {
		return nil, err
	}

	var count int64
	if err := s.db.Model(schema.NewRecord()).Where("product_id = ?", productID).Count(&count).Error; err != nil {
		return nil, apperrors.Internal("count facet", err)
	}

	now := time.Now()
	if count == 0 {
		row := make(map[string]interface{}, len(cols)+6)
		for column, value := range cols {
			row[column] = value
		}
		row["id"] = uuid.New()
		row["product_id"] = productID
		row["created_by"] = actorID
		row["updated_by"] = actorID
		row["created_at"] = now
		row["updated_at"] = now

		if err := s.db.Model(schema.NewRecord()).Create(row).Error; err != nil {
			return nil, remapStorageError(facetName, err)
		}
	} else {
		updates := make(map[string]interface{}, len(cols)+2)
		for column, value := range cols {
			updates[column] = value
		}
		updates["updated_by"] = actorID
		updates["updated_at"] = now

		if err := s.db.Model(schema.NewRecord()).Where("product_id = ?", productID).Updates(updates).Error; err != nil {
			return nil, remapStorageError(facetName, err)
		}
	}

	record := schema.NewRecord()
	if err := s.db.Where("product_id = ?", productID).Take(record).Error; err != nil {
		return nil, apperrors.Internal("reload facet", err)
	}
	return record, nil
}

// GetAggregateDetail assembles the root with whichever facets currently
// exist.
func (s *ProductService) GetAggregateDetail(productID uuid.UUID) (*AggregateDetail, error) {
	product, err := s.fetchProduct(productID)
	if err != nil {
		return nil, err
	}

	detail := &AggregateDetail{
		Product: product,
		Facets:  make(map[string]interface{}, len(facets.Names())),
	}

	for _, name := range facets.Names() {
		schema, _ := facets.Lookup(name)
		record := schema.NewRecord()
		err := s.db.Where("product_id = ?", productID).Take(record).Error
		switch {
		case err == nil:
			detail.Facets[name] = record
		case errors.Is(err, gorm.ErrRecordNotFound):
			detail.Facets[name] = nil
		default:
			return nil, apperrors.Internal("load facet "+name, err)
		}
	}

	return detail, nil
}

var statColumns = map[models.StatName]string{
	models.StatRating:       "rating",
	models.StatReviewsCount: "reviews_count",
	models.StatViews:        "views",
}

// UpdateStatistic is the only write path for the read-only statistics on the
// root.
func (s *ProductService) UpdateStatistic(actorID, productID uuid.UUID, statName string, value interface{}) (*models.Product, error) {
	column, ok := statColumns[models.StatName(statName)]
	if !ok {
		return nil, apperrors.Validation("stat", "unknown statistic: "+statName)
	}

	product, err := s.fetchProduct(productID)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"updated_by": actorID,
		"updated_at": time.Now(),
	}

	if models.StatName(statName) == models.StatRating {
		max := 5.0
		canonical, err := facets.CanonicalDecimal("rating", value, &zero, &max)
		if err != nil {
			return nil, err
		}
		rating, _ := decimal.RequireFromString(canonical).Float64()
		updates[column] = rating
	} else {
		canonical, err := facets.CanonicalDecimal(statName, value, &zero, nil)
		if err != nil {
			return nil, err
		}
		d := decimal.RequireFromString(canonical)
		if !d.IsInteger() {
			return nil, apperrors.Validation(statName, "must be a whole number")
		}
		updates[column] = d.IntPart()
	}

	if err := s.db.Model(product).Updates(updates).Error; err != nil {
		return nil, apperrors.Internal("update statistic", err)
	}

	return s.fetchProduct(productID)
}

type ProductSearchParams struct {
	utils.PaginationParams
}

func (s *ProductService) ListProducts(params ProductSearchParams) ([]models.Product, int64, error) {
	query := s.db.Model(&models.Product{})

	if params.Search != "" {
		searchTerm := "%" + params.Search + "%"
		query = query.Where("name LIKE ? OR short_description LIKE ?", searchTerm, searchTerm)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, apperrors.Internal("count products", err)
	}

	allowedSortFields := []string{"created_at", "updated_at", "name", "price", "rating", "views"}
	query = utils.ApplySort(query, params.PaginationParams, allowedSortFields)
	query = utils.ApplyPagination(query, params.PaginationParams)

	var products []models.Product
	if err := query.Find(&products).Error; err != nil {
		return nil, 0, apperrors.Internal("fetch products", err)
	}

	return products, total, nil
}

// Validation gate helpers. Every check here runs before storage is written;
// the unique indexes underneath remain the backstop for racing writers.

func (s *ProductService) runCreateGate(name string, normalized map[string]map[string]interface{}) error {
	var count int64
	if err := s.db.Model(&models.Product{}).Where("name = ?", name).Count(&count).Error; err != nil {
		return apperrors.Internal("check name uniqueness", err)
	}
	if count > 0 {
		return apperrors.Conflict("product", "name already in use")
	}

	for _, facetName := range facets.Names() {
		cols, supplied := normalized[facetName]
		if !supplied {
			continue
		}
		schema, _ := facets.Lookup(facetName)
		if err := s.runFacetGate(schema, cols, nil); err != nil {
			return err
		}
	}
	return nil
}

// runFacetGate checks slug uniqueness and referential integrity for one
// normalized facet payload. excludeProductID carves the root's own basic row
// out of the slug check so a no-op re-save stays legal.
func (s *ProductService) runFacetGate(schema *facets.Schema, cols map[string]interface{}, excludeProductID *uuid.UUID) error {
	if schema.Name == facets.FacetBasic {
		if slug, ok := cols["slug"].(string); ok && slug != "" {
			query := s.db.Model(&models.ProductBasic{}).Where("slug = ?", slug)
			if excludeProductID != nil {
				query = query.Where("product_id <> ?", *excludeProductID)
			}
			var count int64
			if err := query.Count(&count).Error; err != nil {
				return apperrors.Internal("check slug uniqueness", err)
			}
			if count > 0 {
				return apperrors.Conflict("slug", "slug already in use")
			}
		}
	}

	for i := range schema.Fields {
		field := &schema.Fields[i]
		if field.Ref == "" {
			continue
		}
		raw, ok := cols[field.Column].(string)
		if !ok || raw == "" {
			continue
		}
		id, err := uuid.Parse(raw)
		if err != nil {
			return apperrors.Validation(field.Name, "invalid uuid: "+raw)
		}
		exists, err := s.catalog.ResolveReference(field.Ref, id)
		if err != nil {
			return apperrors.Internal("resolve "+field.Ref, err)
		}
		if !exists {
			return apperrors.NotFound(field.Ref)
		}
	}
	return nil
}

func (s *ProductService) fetchProduct(productID uuid.UUID) (*models.Product, error) {
	var product models.Product
	if err := s.db.Where("id = ?", productID).First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("product")
		}
		return nil, apperrors.Internal("fetch product", err)
	}
	return &product, nil
}

// remapStorageError keeps raw driver errors from leaking: unique-constraint
// violations that slip past the gate surface as Conflict, everything else as
// Internal.
func remapStorageError(resource string, err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperrors.Conflict(resource, "duplicate value for unique field")
	}
	return apperrors.Internal("write "+resource, err)
}

func (s *ProductService) normalizeFacets(payloads map[string]map[string]interface{}) (map[string]map[string]interface{}, error) {
	normalized := make(map[string]map[string]interface{}, len(payloads))
	for name, raw := range payloads {
		schema, ok := facets.Lookup(name)
		if !ok {
			return nil, apperrors.NotFound("facet")
		}
		cols, err := facets.Normalize(schema, raw)
		if err != nil {
			return nil, err
		}
		normalized[name] = cols
	}
	return normalized, nil
}

func requestValidationError(err error) error {
	if err == nil {
		return nil
	}
	if verrs := utils.GetValidationErrors(err); len(verrs) > 0 {
		return apperrors.Validation(verrs[0].Field, verrs[0].Message)
	}
	return apperrors.Validation("", err.Error())
}
