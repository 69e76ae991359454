package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"ecomus.backend/internal/domain/entities"
	domainerrors "ecomus.backend/internal/domain/errors"
	"ecomus.backend/internal/interfaces/http/response"
	"ecomus.backend/internal/usecases"
)

// ProductHandler handles product endpoints
type ProductHandler struct {
	productUsecase *usecases.ProductUsecase
}

// NewProductHandler creates a new product handler
func NewProductHandler(productUsecase *usecases.ProductUsecase) *ProductHandler {
	return &ProductHandler{productUsecase: productUsecase}
}

// productResponse decorates a product with its derived pricing fields.
type productResponse struct {
	*entities.Product
	DiscountedPrice decimal.Decimal `json:"discounted_price"`
}

func newProductResponse(p *entities.Product) productResponse {
	return productResponse{Product: p, DiscountedPrice: p.DiscountedPrice()}
}

// List lists all products
// GET /api/v1/products
func (h *ProductHandler) List(c *gin.Context) {
	products, err := h.productUsecase.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]productResponse, 0, len(products))
	for _, p := range products {
		items = append(items, newProductResponse(p))
	}
	response.Success(c, http.StatusOK, items)
}

// Get returns a product by ID
// GET /api/v1/products/:id
func (h *ProductHandler) Get(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	product, err := h.productUsecase.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, newProductResponse(product))
}

// Create creates a product
// POST /api/v1/products
func (h *ProductHandler) Create(c *gin.Context) {
	var input entities.ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	product, err := h.productUsecase.Create(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, newProductResponse(product))
}

// Replace overwrites a product
// PUT /api/v1/products/:id
func (h *ProductHandler) Replace(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var input entities.ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	product, err := h.productUsecase.Replace(c.Request.Context(), id, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, newProductResponse(product))
}

// Patch partially updates a product
// PATCH /api/v1/products/:id
func (h *ProductHandler) Patch(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var patch entities.ProductPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	product, err := h.productUsecase.Patch(c.Request.Context(), id, &patch)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, newProductResponse(product))
}

// Delete removes a product
// DELETE /api/v1/products/:id
func (h *ProductHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.productUsecase.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
