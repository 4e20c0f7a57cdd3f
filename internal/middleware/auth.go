package middleware

import (
	"strings"

	"jobtracker_backend/internal/auth"
	"jobtracker_backend/internal/logger"
	"jobtracker_backend/internal/models"
	"jobtracker_backend/pkg/apperrors"
	"jobtracker_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware verifies the bearer token and stores the caller on the context.
func AuthMiddleware(tokens *auth.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			apperrors.HandleError(c, apperrors.NewUnauthorizedError("Authorization header missing or invalid"))
			return
		}

		claims, err := tokens.Parse(strings.TrimPrefix(authHeader, "Bearer "))
		if err != nil {
			logger.CtxWarn(c.Request.Context(), "Rejected bearer token", "error", err, "path", c.Request.URL.Path)
			apperrors.HandleError(c, apperrors.ErrInvalidToken)
			return
		}

		c.Set(contextkeys.UserIDKey, claims.UserID)
		c.Set(contextkeys.RoleKey, string(claims.Role))
		c.Request = c.Request.WithContext(logger.WithUserID(c.Request.Context(), claims.UserID))
		c.Next()
	}
}

// RoleMiddleware restricts a route to one role.
func RoleMiddleware(requiredRole models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := models.UserRole(c.GetString(contextkeys.RoleKey))
		if role == "" {
			apperrors.HandleError(c, apperrors.NewForbiddenError("Access denied: no role"))
			return
		}
		if role != requiredRole {
			apperrors.HandleError(c, apperrors.ErrInsufficientPermissions)
			return
		}
		c.Next()
	}
}

// GetUserID returns the authenticated user id, or "".
func GetUserID(c *gin.Context) string {
	return c.GetString(contextkeys.UserIDKey)
}
