package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bookvault/bookvault/internal/database/service"
	"github.com/bookvault/bookvault/internal/validation"
)

// AuthHandler handles HTTP requests for authentication
type AuthHandler struct {
	service service.AuthService
	logger  *slog.Logger
}

// NewAuthHandler creates a new authentication handler
func NewAuthHandler(service service.AuthService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		logger:  logger,
	}
}

// Request DTOs
type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Signup handles POST /api/v1/signup
func (h *AuthHandler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("⚠️ [AuthHandler] Malformed signup request", "error", err)
		RespondError(c, http.StatusBadRequest, "All fields are required")
		return
	}

	if errs := validation.ValidateSignup(req.Name, req.Email, req.Password); len(errs) > 0 {
		RespondValidationError(c, errs)
		return
	}

	user, err := h.service.Signup(req.Name, req.Email, req.Password)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Signup successful",
		"data":    user,
	})
}

// Login handles POST /api/v1/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("⚠️ [AuthHandler] Malformed login request", "error", err)
		RespondError(c, http.StatusBadRequest, "Email and Password are required")
		return
	}

	if errs := validation.ValidateLogin(req.Email, req.Password); len(errs) > 0 {
		RespondValidationError(c, errs)
		return
	}

	user, token, err := h.service.Login(req.Email, req.Password)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	// http-only cookie carries the session for the browser client
	c.SetCookie("token", token, int(h.service.TokenTTL().Seconds()), "/", "", false, true)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Login successful",
		"user":    user,
		"token":   token,
	})
}

// Logout handles POST /api/v1/logout. Clearing the cookie is all there is to
// it; tokens are not tracked server-side.
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie("token", "", -1, "/", "", false, true)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Logout successful",
	})
}

// handleServiceError maps service errors to the common envelope
func (h *AuthHandler) handleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrEmailAlreadyExists):
		RespondError(c, http.StatusConflict, "User already exists")
	case errors.Is(err, service.ErrInvalidCredentials):
		RespondError(c, http.StatusUnauthorized, "Email or Password is incorrect.")
	default:
		h.logger.Error("❌ [AuthHandler] Internal server error", "error", err)
		RespondError(c, http.StatusInternalServerError, "Internal Server Error")
	}
}
