package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"ecomus.backend/internal/domain/entities"
	domainerrors "ecomus.backend/internal/domain/errors"
	"ecomus.backend/internal/interfaces/http/response"
	"ecomus.backend/internal/usecases"
)

// CategoryHandler handles category endpoints
type CategoryHandler struct {
	categoryUsecase *usecases.CategoryUsecase
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(categoryUsecase *usecases.CategoryUsecase) *CategoryHandler {
	return &CategoryHandler{categoryUsecase: categoryUsecase}
}

// Create creates a category
// POST /api/v1/categories
func (h *CategoryHandler) Create(c *gin.Context) {
	var input entities.CategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	category, err := h.categoryUsecase.Create(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, category)
}

// Get returns a category by ID
// GET /api/v1/categories/:id
func (h *CategoryHandler) Get(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	category, err := h.categoryUsecase.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, category)
}

// Replace overwrites a category
// PUT /api/v1/categories/:id
func (h *CategoryHandler) Replace(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var input entities.CategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	category, err := h.categoryUsecase.Replace(c.Request.Context(), id, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusResetContent, category)
}

// Patch partially updates a category
// PATCH /api/v1/categories/:id
func (h *CategoryHandler) Patch(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var patch entities.CategoryPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	category, err := h.categoryUsecase.Patch(c.Request.Context(), id, &patch)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusResetContent, category)
}

// Delete removes a category
// DELETE /api/v1/categories/:id
func (h *CategoryHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.categoryUsecase.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
