// internal/handlers/product.go
package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/gematelier/atelier-backend/internal/services"
	"github.com/gematelier/atelier-backend/internal/utils"
)

type ProductHandler struct {
	productService *services.ProductService
}

func NewProductHandler(productService *services.ProductService) *ProductHandler {
	return &ProductHandler{
		productService: productService,
	}
}

// GET /products
func (h *ProductHandler) ListProducts(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	products, total, err := h.productService.ListProducts(services.ProductSearchParams{
		PaginationParams: params,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	result := utils.CreatePaginationResult(products, total, params)
	utils.PaginatedResponse(c, result)
}

// POST /products
func (h *ProductHandler) CreateAggregate(c *gin.Context) {
	actorID, ok := actorFromContext(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	var req services.CreateAggregateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "", err.Error())
		return
	}

	detail, err := h.productService.CreateAggregate(actorID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.CreatedResponse(c, detail)
}

// GET /products/:id
func (h *ProductHandler) GetAggregateDetail(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid product ID", nil)
		return
	}

	detail, err := h.productService.GetAggregateDetail(productID)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, detail)
}

// PUT /products/:id/facets/:facet
func (h *ProductHandler) UpdateFacet(c *gin.Context) {
	actorID, ok := actorFromContext(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid product ID", nil)
		return
	}

	var raw map[string]interface{}
	if err := c.ShouldBindJSON(&raw); err != nil {
		utils.BadRequestResponse(c, "", err.Error())
		return
	}

	row, err := h.productService.UpdateFacet(actorID, productID, c.Param("facet"), raw)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, row)
}

// PATCH /products/:id/statistics/:stat
func (h *ProductHandler) UpdateStatistic(c *gin.Context) {
	actorID, ok := actorFromContext(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid product ID", nil)
		return
	}

	var body struct {
		Value interface{} `json:"value"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.BadRequestResponse(c, "", err.Error())
		return
	}

	product, err := h.productService.UpdateStatistic(actorID, productID, c.Param("stat"), body.Value)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, product)
}

func actorFromContext(c *gin.Context) (uuid.UUID, bool) {
	userIDStr, exists := utils.GetUserIDFromContext(c)
	if !exists {
		return uuid.Nil, false
	}
	actorID, err := uuid.Parse(userIDStr)
	if err != nil {
		return uuid.Nil, false
	}
	return actorID, true
}
