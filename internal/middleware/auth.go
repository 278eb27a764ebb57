package middleware

import (
	"errors"
	"strings"

	apierrors "contacts-api/internal/errors"
	"contacts-api/internal/repository"
	"contacts-api/internal/token"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Context keys set by RequireAuth for downstream handlers.
const (
	ContextKeyUserID    = "user_id"
	ContextKeyUserEmail = "user_email"
)

// RequireAuth verifies the bearer token and resolves the acting user.
// Expired tokens get their own message; any other token problem is a plain
// 401. A token whose user record no longer exists yields a 404.
func RequireAuth(issuer *token.Issuer, userRepo repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		claims, err := issuer.Verify(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			if errors.Is(err, token.ErrExpired) {
				apierrors.Unauthorized(c, "Token has expired")
			} else {
				apierrors.Unauthorized(c, "")
			}
			c.Abort()
			return
		}

		if _, err := userRepo.FindByID(claims.UserID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				apierrors.NotFound(c, "User not found")
			} else {
				apierrors.InternalError(c, "")
			}
			c.Abort()
			return
		}

		c.Set(ContextKeyUserID, claims.UserID)
		c.Set(ContextKeyUserEmail, claims.Email)
		c.Next()
	}
}

// GetUserID retrieves the current user ID from context
func GetUserID(c *gin.Context) (uint64, bool) {
	userID, exists := c.Get(ContextKeyUserID)
	if !exists {
		return 0, false
	}

	switch v := userID.(type) {
	case uint64:
		return v, true
	case uint:
		return uint64(v), true
	case int:
		if v < 0 {
			return 0, false
		}
		return uint64(v), true
	default:
		return 0, false
	}
}
