package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	domainerrors "ecomus.backend/internal/domain/errors"
	"ecomus.backend/internal/interfaces/http/response"
	"ecomus.backend/internal/usecases"
)

// ProfileHandler handles profile endpoints
type ProfileHandler struct {
	authUsecase *usecases.AuthUsecase
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(authUsecase *usecases.AuthUsecase) *ProfileHandler {
	return &ProfileHandler{authUsecase: authUsecase}
}

// Get returns a profile by ID
// GET /api/v1/profile/:id
func (h *ProfileHandler) Get(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	profile, err := h.authUsecase.GetProfile(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, profile)
}

// parseIDParam reads the :id path segment as an unsigned integer.
func parseIDParam(c *gin.Context) (uint, error) {
	raw := c.Param("id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, domainerrors.BadRequest("invalid id")
	}
	return uint(id), nil
}
