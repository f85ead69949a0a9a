// internal/services/catalog_service_test.go
package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gematelier/atelier-backend/internal/apperrors"
	"github.com/gematelier/atelier-backend/internal/facets"
	"github.com/gematelier/atelier-backend/internal/utils"
)

func TestCategoryCRUD(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCatalogService(db)

	category, err := svc.CreateCategory(&CategoryRequest{Name: "Necklaces", Description: "Chains and pendants"})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, category.ID)

	fetched, err := svc.GetCategory(category.ID)
	require.NoError(t, err)
	assert.Equal(t, "Necklaces", fetched.Name)

	updated, err := svc.UpdateCategory(category.ID, &CategoryRequest{Name: "Pendants"})
	require.NoError(t, err)
	assert.Equal(t, "Pendants", updated.Name)

	_, _, err = svc.ListCategories(utils.PaginationParams{Page: 1, Limit: 20})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteCategory(category.ID))

	_, err = svc.GetCategory(category.ID)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestCategoryValidation(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCatalogService(db)

	_, err := svc.CreateCategory(&CategoryRequest{Name: "X"})
	assert.True(t, apperrors.IsValidation(err))
}

func TestCollectionCRUD(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCatalogService(db)

	collection, err := svc.CreateCollection(&CollectionRequest{Name: "Midnight", Season: "Winter 2026"})
	require.NoError(t, err)

	fetched, err := svc.GetCollection(collection.ID)
	require.NoError(t, err)
	assert.Equal(t, "Winter 2026", fetched.Season)

	require.NoError(t, svc.DeleteCollection(collection.ID))
	_, err = svc.GetCollection(collection.ID)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestSignaturePieceCRUD(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCatalogService(db)

	piece, err := svc.CreateSignaturePiece(&SignaturePieceRequest{Name: "Eclipse", Designer: "A. Vance"})
	require.NoError(t, err)

	updated, err := svc.UpdateSignaturePiece(piece.ID, &SignaturePieceRequest{Name: "Eclipse", Story: "One-off commission."})
	require.NoError(t, err)
	assert.Equal(t, "One-off commission.", updated.Story)

	require.NoError(t, svc.DeleteSignaturePiece(piece.ID))
	_, err = svc.GetSignaturePiece(piece.ID)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestResolveReference(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCatalogService(db)

	category, err := svc.CreateCategory(&CategoryRequest{Name: "Earrings"})
	require.NoError(t, err)

	exists, err := svc.ResolveReference(facets.RefCategory, category.ID)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = svc.ResolveReference(facets.RefCategory, uuid.New())
	require.NoError(t, err)
	assert.False(t, exists)

	// Soft-deleted rows no longer resolve.
	require.NoError(t, svc.DeleteCategory(category.ID))
	exists, err = svc.ResolveReference(facets.RefCategory, category.ID)
	require.NoError(t, err)
	assert.False(t, exists)

	_, err = svc.ResolveReference("warehouse", uuid.New())
	assert.Error(t, err)
}
