// internal/services/catalog_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/gematelier/atelier-backend/internal/apperrors"
	"github.com/gematelier/atelier-backend/internal/facets"
	"github.com/gematelier/atelier-backend/internal/models"
	"github.com/gematelier/atelier-backend/internal/utils"
)

// CatalogService is the mechanical CRUD layer behind the aggregate store's
// referential checks: categories, collections and signature pieces. The
// aggregate core only ever consults ResolveReference.
type CatalogService struct {
	db *gorm.DB
}

func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{db: db}
}

// ResolveReference reports whether the referenced row exists and is not
// soft-deleted.
func (s *CatalogService) ResolveReference(kind string, id uuid.UUID) (bool, error) {
	var count int64
	var err error

	switch kind {
	case facets.RefCategory:
		err = s.db.Model(&models.Category{}).Where("id = ?", id).Count(&count).Error
	case facets.RefCollection:
		err = s.db.Model(&models.Collection{}).Where("id = ?", id).Count(&count).Error
	case facets.RefSignaturePiece:
		err = s.db.Model(&models.SignaturePiece{}).Where("id = ?", id).Count(&count).Error
	default:
		return false, fmt.Errorf("unknown reference kind %q", kind)
	}

	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Categories

type CategoryRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=100"`
	Description string `json:"description"`
}

func (s *CatalogService) CreateCategory(req *CategoryRequest) (*models.Category, error) {
	if err := requestValidationError(utils.ValidateStruct(req)); err != nil {
		return nil, err
	}
	category := &models.Category{Name: req.Name, Description: req.Description}
	if err := s.db.Create(category).Error; err != nil {
		return nil, apperrors.Internal("create category", err)
	}
	return category, nil
}

func (s *CatalogService) GetCategory(id uuid.UUID) (*models.Category, error) {
	var category models.Category
	if err := s.db.Where("id = ?", id).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("category")
		}
		return nil, apperrors.Internal("fetch category", err)
	}
	return &category, nil
}

func (s *CatalogService) ListCategories(params utils.PaginationParams) ([]models.Category, int64, error) {
	return listCatalogEntities[models.Category](s.db, params)
}

func (s *CatalogService) UpdateCategory(id uuid.UUID, req *CategoryRequest) (*models.Category, error) {
	if err := requestValidationError(utils.ValidateStruct(req)); err != nil {
		return nil, err
	}
	category, err := s.GetCategory(id)
	if err != nil {
		return nil, err
	}
	updates := map[string]interface{}{"name": req.Name, "description": req.Description}
	if err := s.db.Model(category).Updates(updates).Error; err != nil {
		return nil, apperrors.Internal("update category", err)
	}
	return category, nil
}

func (s *CatalogService) DeleteCategory(id uuid.UUID) error {
	category, err := s.GetCategory(id)
	if err != nil {
		return err
	}
	if err := s.db.Delete(category).Error; err != nil {
		return apperrors.Internal("delete category", err)
	}
	return nil
}

// Collections

type CollectionRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=100"`
	Description string `json:"description"`
	Season      string `json:"season" validate:"max=50"`
}

func (s *CatalogService) CreateCollection(req *CollectionRequest) (*models.Collection, error) {
	if err := requestValidationError(utils.ValidateStruct(req)); err != nil {
		return nil, err
	}
	collection := &models.Collection{Name: req.Name, Description: req.Description, Season: req.Season}
	if err := s.db.Create(collection).Error; err != nil {
		return nil, apperrors.Internal("create collection", err)
	}
	return collection, nil
}

func (s *CatalogService) GetCollection(id uuid.UUID) (*models.Collection, error) {
	var collection models.Collection
	if err := s.db.Where("id = ?", id).First(&collection).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("collection")
		}
		return nil, apperrors.Internal("fetch collection", err)
	}
	return &collection, nil
}

func (s *CatalogService) ListCollections(params utils.PaginationParams) ([]models.Collection, int64, error) {
	return listCatalogEntities[models.Collection](s.db, params)
}

func (s *CatalogService) UpdateCollection(id uuid.UUID, req *CollectionRequest) (*models.Collection, error) {
	if err := requestValidationError(utils.ValidateStruct(req)); err != nil {
		return nil, err
	}
	collection, err := s.GetCollection(id)
	if err != nil {
		return nil, err
	}
	updates := map[string]interface{}{"name": req.Name, "description": req.Description, "season": req.Season}
	if err := s.db.Model(collection).Updates(updates).Error; err != nil {
		return nil, apperrors.Internal("update collection", err)
	}
	return collection, nil
}

func (s *CatalogService) DeleteCollection(id uuid.UUID) error {
	collection, err := s.GetCollection(id)
	if err != nil {
		return err
	}
	if err := s.db.Delete(collection).Error; err != nil {
		return apperrors.Internal("delete collection", err)
	}
	return nil
}

// Signature pieces

type SignaturePieceRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Designer string `json:"designer" validate:"max=100"`
	Story    string `json:"story"`
}

func (s *CatalogService) CreateSignaturePiece(req *SignaturePieceRequest) (*models.SignaturePiece, error) {
	if err := requestValidationError(utils.ValidateStruct(req)); err != nil {
		return nil, err
	}
	piece := &models.SignaturePiece{Name: req.Name, Designer: req.Designer, Story: req.Story}
	if err := s.db.Create(piece).Error; err != nil {
		return nil, apperrors.Internal("create signature piece", err)
	}
	return piece, nil
}

func (s *CatalogService) GetSignaturePiece(id uuid.UUID) (*models.SignaturePiece, error) {
	var piece models.SignaturePiece
	if err := s.db.Where("id = ?", id).First(&piece).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("signature_piece")
		}
		return nil, apperrors.Internal("fetch signature piece", err)
	}
	return &piece, nil
}

func (s *CatalogService) ListSignaturePieces(params utils.PaginationParams) ([]models.SignaturePiece, int64, error) {
	return listCatalogEntities[models.SignaturePiece](s.db, params)
}

func (s *CatalogService) UpdateSignaturePiece(id uuid.UUID, req *SignaturePieceRequest) (*models.SignaturePiece, error) {
	if err := requestValidationError(utils.ValidateStruct(req)); err != nil {
		return nil, err
	}
	piece, err := s.GetSignaturePiece(id)
	if err != nil {
		return nil, err
	}
	updates := map[string]interface{}{"name": req.Name, "designer": req.Designer, "story": req.Story}
	if err := s.db.Model(piece).Updates(updates).Error; err != nil {
		return nil, apperrors.Internal("update signature piece", err)
	}
	return piece, nil
}

func (s *CatalogService) DeleteSignaturePiece(id uuid.UUID) error {
	piece, err := s.GetSignaturePiece(id)
	if err != nil {
		return err
	}
	if err := s.db.Delete(piece).Error; err != nil {
		return apperrors.Internal("delete signature piece", err)
	}
	return nil
}

func listCatalogEntities[T any](db *gorm.DB, params utils.PaginationParams) ([]T, int64, error) {
	var entity T
	query := db.Model(&entity)

	if params.Search != "" {
		query = query.Where("name LIKE ?", "%"+params.Search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, apperrors.Internal("count catalog entities", err)
	}

	query = utils.ApplySort(query, params, []string{"created_at", "updated_at", "name"})
	query = utils.ApplyPagination(query, params)

	var items []T
	if err := query.Find(&items).Error; err != nil {
		return nil, 0, apperrors.Internal("fetch catalog entities", err)
	}
	return items, total, nil
}
