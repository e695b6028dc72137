package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Eswaridangeti/golden-hour-ai-prototype-real/internal/middleware"
	"github.com/Eswaridangeti/golden-hour-ai-prototype-real/internal/models"
	"github.com/Eswaridangeti/golden-hour-ai-prototype-real/internal/service"
)

type AuthHandler interface {
	SignUp(c *gin.Context)
	SignIn(c *gin.Context)
	SignOut(c *gin.Context)
}

type authHandler struct {
	auth   service.AuthService
	logger *zap.Logger
}

func NewAuthHandler(auth service.AuthService, logger *zap.Logger) AuthHandler {
	return &authHandler{auth: auth, logger: logger}
}

type SignUpRequest struct {
	FullName string `json:"fullName" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type SignInRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// SignUp handles POST /api/auth/signup
func (h *authHandler) SignUp(c *gin.Context) {
	var req SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.auth.SignUp(c.Request.Context(), req.FullName, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserAlreadyExists):
			c.JSON(http.StatusConflict, gin.H{"error": "An account with this email already exists"})
		case errors.Is(err, service.ErrInvalidSignup):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			h.logger.Error("Failed to sign up", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register user"})
		}
		return
	}

	token, expiresAt, err := h.auth.IssueToken(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register user"})
		return
	}
	record := models.UserRecord{FullName: user.FullName, Email: user.Email}
	if err := middleware.SessionFrom(c).SignIn(c.Request.Context(), record, token); err != nil {
		h.logger.Error("Failed to store session user", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register user"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":    "Account created successfully",
		"token":      token,
		"expires_at": expiresAt,
		"user":       record,
	})
}

// SignIn handles POST /api/auth/signin
func (h *authHandler) SignIn(c *gin.Context) {
	var req SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, expiresAt, user, err := h.auth.SignIn(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}
		h.logger.Error("Failed to sign in", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to login"})
		return
	}

	record := models.UserRecord{FullName: user.FullName, Email: user.Email}
	if err := middleware.SessionFrom(c).SignIn(c.Request.Context(), record, token); err != nil {
		h.logger.Error("Failed to store session user", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to login"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "Login successful",
		"token":      token,
		"expires_at": expiresAt,
		"user":       record,
	})
}

// SignOut handles POST /api/auth/signout
func (h *authHandler) SignOut(c *gin.Context) {
	if err := middleware.SessionFrom(c).SignOut(c.Request.Context()); err != nil {
		h.logger.Error("Failed to sign out", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to logout"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logout successful", "redirect": "/"})
}
