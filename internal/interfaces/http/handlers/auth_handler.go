package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"ecomus.backend/internal/domain/entities"
	domainerrors "ecomus.backend/internal/domain/errors"
	"ecomus.backend/internal/interfaces/http/middleware"
	"ecomus.backend/internal/interfaces/http/response"
	"ecomus.backend/internal/usecases"
	"ecomus.backend/pkg/redis"
)

// AuthHandler handles account and session endpoints
type AuthHandler struct {
	authUsecase  *usecases.AuthUsecase
	sessionStore *redis.SessionStore
	sessionTTL   time.Duration
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authUsecase *usecases.AuthUsecase, sessionStore *redis.SessionStore, sessionTTL time.Duration) *AuthHandler {
	return &AuthHandler{
		authUsecase:  authUsecase,
		sessionStore: sessionStore,
		sessionTTL:   sessionTTL,
	}
}

// Register handles user registration
// POST /api/v1/account/register
func (h *AuthHandler) Register(c *gin.Context) {
	var input entities.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	user, err := h.authUsecase.Register(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"message": "Registration successful. Check your email to activate your account.",
		"user": gin.H{
			"id":    user.ID,
			"email": user.Email,
			"name":  user.Name,
		},
	})
}

// Activate handles the emailed activation link
// GET /api/v1/account/activate/:uid/:token
func (h *AuthHandler) Activate(c *gin.Context) {
	h.activate(c, c.Param("uid"), c.Param("token"))
}

// ActivateConfirm handles activation via JSON body
// POST /api/v1/account/activate
func (h *AuthHandler) ActivateConfirm(c *gin.Context) {
	var input entities.ActivationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}
	h.activate(c, input.UID, input.Token)
}

func (h *AuthHandler) activate(c *gin.Context, uid, token string) {
	already, err := h.authUsecase.Activate(c.Request.Context(), uid, token)
	if err != nil {
		response.Error(c, err)
		return
	}

	message := "Account activated successfully."
	if already {
		message = "Account is already activated."
	}
	response.Success(c, http.StatusOK, gin.H{"message": message})
}

// Login authenticates a user and opens a server-side session
// POST /api/v1/login
func (h *AuthHandler) Login(c *gin.Context) {
	var input entities.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	user, pair, err := h.authUsecase.Login(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	sessionID := uuid.New().String()
	err = h.sessionStore.CreateSession(c.Request.Context(), sessionID, &redis.SessionData{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	}, h.sessionTTL)
	if err != nil {
		response.Error(c, domainerrors.InternalError(err))
		return
	}

	c.SetCookie(middleware.SessionCookieName, sessionID, int(h.sessionTTL.Seconds()), "/", "", false, true)

	response.Success(c, http.StatusOK, gin.H{
		"message": "Login successful.",
		"user": gin.H{
			"id":      user.ID,
			"email":   user.Email,
			"name":    user.Name,
			"isAdmin": user.IsAdmin,
		},
	})
}

// Logout tears down the server-side session
// POST /api/v1/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	sessionID, err := c.Cookie(middleware.SessionCookieName)
	if err == nil && sessionID != "" {
		_ = h.sessionStore.DeleteSession(c.Request.Context(), sessionID)
	}

	c.SetCookie(middleware.SessionCookieName, "", -1, "/", "", false, true)
	response.Success(c, http.StatusOK, gin.H{"message": "Logged out."})
}

// CheckAuth reports the authenticated user
// GET /api/v1/checkauth
func (h *AuthHandler) CheckAuth(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	user, err := h.authUsecase.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, user)
}

// ChangePassword swaps the authenticated user's password
// POST /api/v1/change_password
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	var input entities.ChangePasswordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	if err := h.authUsecase.ChangePassword(c.Request.Context(), userID, &input); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Password changed."})
}

// ResetPassword starts the password reset flow
// POST /api/v1/reset_password
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var input entities.ResetPasswordRequestInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	if err := h.authUsecase.RequestPasswordReset(c.Request.Context(), &input); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Password reset email sent."})
}

// ResetPasswordLanding echoes the credentials from an emailed reset link
// so a frontend can feed them into the confirm step.
// GET /api/v1/account/reset_password/:uid/:token
func (h *AuthHandler) ResetPasswordLanding(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{
		"uid":   c.Param("uid"),
		"token": c.Param("token"),
	})
}

// ResetPasswordConfirm completes the password reset flow
// POST /api/v1/account/reset_password_confirm
func (h *AuthHandler) ResetPasswordConfirm(c *gin.Context) {
	var input entities.ResetPasswordConfirmInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	if err := h.authUsecase.ConfirmPasswordReset(c.Request.Context(), &input); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Password has been reset."})
}
