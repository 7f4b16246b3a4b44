package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"eventmart/internal/domain/user"
)

const (
	CtxUserKey   = "current_user"
	CtxUserIDKey = "user_id"
	CtxRoleKey   = "role"
)

// IdentityStore resolves a token's user id to a live identity. A valid
// token whose user has since been deleted must not pass.
type IdentityStore interface {
	ByID(ctx context.Context, id int64) (user.User, error)
}

func Authenticate(jwtMgr *JWTManager, users IdentityStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" || !strings.HasPrefix(h, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}
		claims, err := jwtMgr.Parse(strings.TrimPrefix(h, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		u, err := users.ByID(c.Request.Context(), claims.UserID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}

		c.Set(CtxUserKey, u)
		c.Set(CtxUserIDKey, u.ID)
		c.Set(CtxRoleKey, u.Role)
		c.Next()
	}
}

// RequireRole enforces strict role equality. There is no hierarchy:
// an admin calling a vendor endpoint is denied.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		r, _ := c.Get(CtxRoleKey)
		if rStr, ok := r.(string); !ok || rStr != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "access denied"})
			return
		}
		c.Next()
	}
}

// CurrentUser returns the identity resolved by Authenticate.
func CurrentUser(c *gin.Context) user.User {
	u, _ := c.Get(CtxUserKey)
	cu, _ := u.(user.User)
	return cu
}

func CurrentUserID(c *gin.Context) int64 {
	id, _ := c.Get(CtxUserIDKey)
	v, _ := id.(int64)
	return v
}
