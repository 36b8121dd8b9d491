package security

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mEdHaT33/Arkan/pkg/roles"
)

const (
	ContextUsername = "username"
	ContextRole     = "role"
)

// Session is the authenticated operator of the current request.
type Session struct {
	Username string
	Role     roles.Role
}

// JWTMiddleware validates the console session token and puts the operator's
// identity into the request context.
func JWTMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header missing"})
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		username, role, err := ParseToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		c.Set(ContextUsername, username)
		c.Set(ContextRole, role.String())
		c.Next()
	}
}

// CurrentSession reads the operator identity set by JWTMiddleware. Handlers
// consume the session through this accessor instead of ad hoc context or
// storage lookups.
func CurrentSession(c *gin.Context) (Session, bool) {
	username := c.GetString(ContextUsername)
	if username == "" {
		return Session{}, false
	}
	return Session{
		Username: username,
		Role:     roles.Parse(c.GetString(ContextRole)),
	}, true
}

// Authorize restricts a route to the given roles.
func Authorize(allowed ...roles.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := CurrentSession(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Forbidden: insufficient permissions"})
			return
		}

		if !session.Role.IsAny(allowed...) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Forbidden: insufficient permissions"})
			return
		}

		c.Next()
	}
}
