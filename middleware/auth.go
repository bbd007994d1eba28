package middleware

import (
	"net/http"
	"strings"

	"carebook/models"
	"carebook/services/session"
	"carebook/utils"

	"github.com/gin-gonic/gin"
)

// IdentityKey is the gin context key holding the authenticated identity.
const IdentityKey = "identity"

// JWTAuthMiddleware validates the bearer token and resolves the subject to a
// known identity (demo or registered) before the request proceeds.
func JWTAuthMiddleware(sessions session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		subjectID, err := utils.ExtractIDFromToken(tokenString)
		if err != nil || subjectID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		identity, err := sessions.Lookup(c.Request.Context(), subjectID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		c.Set(IdentityKey, identity)
		c.Set("userID", identity.ID)
		c.Next()
	}
}

// AdminOnlyMiddleware gates a route group to identities with the admin role.
// It must run after JWTAuthMiddleware.
func AdminOnlyMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		identity := CurrentIdentity(c)
		if identity == nil || identity.Role != models.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			return
		}
		c.Next()
	}
}

// CurrentIdentity returns the authenticated identity from the gin context,
// or nil when the request is unauthenticated.
func CurrentIdentity(c *gin.Context) *models.Identity {
	val, ok := c.Get(IdentityKey)
	if !ok {
		return nil
	}
	identity, ok := val.(*models.Identity)
	if !ok {
		return nil
	}
	return identity
}
