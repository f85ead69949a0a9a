// internal/handlers/catalog.go
package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/gematelier/atelier-backend/internal/services"
	"github.com/gematelier/atelier-backend/internal/utils"
)

type CatalogHandler struct {
	catalogService *services.CatalogService
}

func NewCatalogHandler(catalogService *services.CatalogService) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
	}
}

func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid ID", nil)
		return uuid.Nil, false
	}
	return id, true
}

// Categories

func (h *CatalogHandler) CreateCategory(c *gin.Context) {
	var req services.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "", err.Error())
		return
	}
	category, err := h.catalogService.CreateCategory(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.CreatedResponse(c, category)
}

func (h *CatalogHandler) GetCategory(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	category, err := h.catalogService.GetCategory(id)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.SuccessResponse(c, category)
}

func (h *CatalogHandler) ListCategories(c *gin.Context) {
	params := utils.GetPaginationParams(c)
	categories, total, err := h.catalogService.ListCategories(params)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.PaginatedResponse(c, utils.CreatePaginationResult(categories, total, params))
}

func (h *CatalogHandler) UpdateCategory(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req services.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "", err.Error())
		return
	}
	category, err := h.catalogService.UpdateCategory(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.SuccessResponse(c, category)
}

func (h *CatalogHandler) DeleteCategory(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.catalogService.DeleteCategory(id); err != nil {
		respondError(c, err)
		return
	}
	utils.SuccessResponse(c, gin.H{"deleted": true})
}

// Collections

func (h *CatalogHandler) CreateCollection(c *gin.Context) {
	var req services.CollectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "", err.Error())
		return
	}
	collection, err := h.catalogService.CreateCollection(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.CreatedResponse(c, collection)
}

func (h *CatalogHandler) GetCollection(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	collection, err := h.catalogService.GetCollection(id)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.SuccessResponse(c, collection)
}

func (h *CatalogHandler) ListCollections(c *gin.Context) {
	params := utils.GetPaginationParams(c)
	collections, total, err := h.catalogService.ListCollections(params)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.PaginatedResponse(c, utils.CreatePaginationResult(collections, total, params))
}

func (h *CatalogHandler) UpdateCollection(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req services.CollectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "", err.Error())
		return
	}
	collection, err := h.catalogService.UpdateCollection(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.SuccessResponse(c, collection)
}

func (h *CatalogHandler) DeleteCollection(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.catalogService.DeleteCollection(id); err != nil {
		respondError(c, err)
		return
	}
	utils.SuccessResponse(c, gin.H{"deleted": true})
}

// Signature pieces

func (h *CatalogHandler) CreateSignaturePiece(c *gin.Context) {
	var req services.SignaturePieceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "", err.Error())
		return
	}
	piece, err := h.catalogService.CreateSignaturePiece(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.CreatedResponse(c, piece)
}

func (h *CatalogHandler) GetSignaturePiece(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	piece, err := h.catalogService.GetSignaturePiece(id)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.SuccessResponse(c, piece)
}

func (h *CatalogHandler) ListSignaturePieces(c *gin.Context) {
	params := utils.GetPaginationParams(c)
	pieces, total, err := h.catalogService.ListSignaturePieces(params)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.PaginatedResponse(c, utils.CreatePaginationResult(pieces, total, params))
}

func (h *CatalogHandler) UpdateSignaturePiece(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req services.SignaturePieceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "", err.Error())
		return
	}
	piece, err := h.catalogService.UpdateSignaturePiece(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.SuccessResponse(c, piece)
}

func (h *CatalogHandler) DeleteSignaturePiece(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.catalogService.DeleteSignaturePiece(id); err != nil {
		respondError(c, err)
		return
	}
	utils.SuccessResponse(c, gin.H{"deleted": true})
}
