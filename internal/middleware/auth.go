package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"github.com/Eswaridangeti/golden-hour-ai-prototype-real/internal/models"
	"github.com/Eswaridangeti/golden-hour-ai-prototype-real/internal/service"
)

const claimsContextKey = "claims"

// AuthMiddleware requires a valid JWT, taken from the Authorization header or,
// when the header is absent, from the session token.
func AuthMiddleware(auth service.AuthService, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header format must be Bearer <token>"})
			c.Abort()
			return
		}
		if tokenString == "" {
			token, err := SessionFrom(c).Token(c.Request.Context())
			if err != nil {
				logger.Error("Failed to read session token", zap.Error(err))
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read session"})
				c.Abort()
				return
			}
			tokenString = token
		}
		if tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			c.Abort()
			return
		}

		claims, err := auth.ParseToken(tokenString)
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Token expired"})
				c.Abort()
				return
			}
			logger.Debug("Invalid JWT token", zap.Error(err))
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			c.Abort()
			return
		}

		c.Set(claimsContextKey, claims)
		c.Next()
	}
}

// bearerToken returns ok=false only for a present but malformed header.
func bearerToken(c *gin.Context) (string, bool) {
	header := c.GetHeader("Authorization")
	if header == "" {
		return "", true
	}
	parts := strings.Split(header, " ")
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

// ClaimsFrom returns the claims set by AuthMiddleware, or nil.
func ClaimsFrom(c *gin.Context) *models.Claims {
	v, ok := c.Get(claimsContextKey)
	if !ok {
		return nil
	}
	claims, _ := v.(*models.Claims)
	return claims
}
