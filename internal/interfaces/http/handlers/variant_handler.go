package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"ecomus.backend/internal/domain/entities"
	domainerrors "ecomus.backend/internal/domain/errors"
	"ecomus.backend/internal/interfaces/http/response"
	"ecomus.backend/internal/usecases"
)

// SizeHandler handles size variant endpoints
type SizeHandler struct {
	sizeUsecase *usecases.SizeUsecase
}

// NewSizeHandler creates a new size handler
func NewSizeHandler(sizeUsecase *usecases.SizeUsecase) *SizeHandler {
	return &SizeHandler{sizeUsecase: sizeUsecase}
}

// List lists all sizes
// GET /api/v1/sizes
func (h *SizeHandler) List(c *gin.Context) {
	sizes, err := h.sizeUsecase.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, sizes)
}

// Get returns a size by ID
// GET /api/v1/sizes/:id
func (h *SizeHandler) Get(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	size, err := h.sizeUsecase.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, size)
}

// Create creates a size
// POST /api/v1/sizes
func (h *SizeHandler) Create(c *gin.Context) {
	var input entities.SizeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	size, err := h.sizeUsecase.Create(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, size)
}

// Replace overwrites a size
// PUT /api/v1/sizes/:id
func (h *SizeHandler) Replace(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var input entities.SizeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	size, err := h.sizeUsecase.Replace(c.Request.Context(), id, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, size)
}

// Delete removes a size
// DELETE /api/v1/sizes/:id
func (h *SizeHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.sizeUsecase.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ColorHandler handles color variant endpoints
type ColorHandler struct {
	colorUsecase *usecases.ColorUsecase
}

// NewColorHandler creates a new color handler
func NewColorHandler(colorUsecase *usecases.ColorUsecase) *ColorHandler {
	return &ColorHandler{colorUsecase: colorUsecase}
}

// List lists all colors
// GET /api/v1/colors
func (h *ColorHandler) List(c *gin.Context) {
	colors, err := h.colorUsecase.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, colors)
}

// Get returns a color by ID
// GET /api/v1/colors/:id
func (h *ColorHandler) Get(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	color, err := h.colorUsecase.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, color)
}

// Create creates a color
// POST /api/v1/colors
func (h *ColorHandler) Create(c *gin.Context) {
	var input entities.ColorInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	color, err := h.colorUsecase.Create(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, color)
}

// Replace overwrites a color
// PUT /api/v1/colors/:id
func (h *ColorHandler) Replace(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var input entities.ColorInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	color, err := h.colorUsecase.Replace(c.Request.Context(), id, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, color)
}

// Delete removes a color
// DELETE /api/v1/colors/:id
func (h *ColorHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.colorUsecase.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
