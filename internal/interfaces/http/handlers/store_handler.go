package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"ecomus.backend/internal/domain/entities"
	domainerrors "ecomus.backend/internal/domain/errors"
	"ecomus.backend/internal/interfaces/http/response"
	"ecomus.backend/internal/usecases"
)

// StoreHandler handles store endpoints
type StoreHandler struct {
	storeUsecase *usecases.StoreUsecase
}

// NewStoreHandler creates a new store handler
func NewStoreHandler(storeUsecase *usecases.StoreUsecase) *StoreHandler {
	return &StoreHandler{storeUsecase: storeUsecase}
}

// Create creates a store
// POST /api/v1/stores
func (h *StoreHandler) Create(c *gin.Context) {
	var input entities.StoreInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	store, err := h.storeUsecase.Create(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, store)
}

// Get returns a store by ID
// GET /api/v1/stores/:id
func (h *StoreHandler) Get(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	store, err := h.storeUsecase.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, store)
}

// Replace overwrites a store
// PUT /api/v1/stores/:id
func (h *StoreHandler) Replace(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var input entities.StoreInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	store, err := h.storeUsecase.Replace(c.Request.Context(), id, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusResetContent, store)
}

// Patch partially updates a store
// PATCH /api/v1/stores/:id
func (h *StoreHandler) Patch(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var patch entities.StorePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	store, err := h.storeUsecase.Patch(c.Request.Context(), id, &patch)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusResetContent, store)
}

// Delete removes a store
// DELETE /api/v1/stores/:id
func (h *StoreHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.storeUsecase.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
