package middlewares

import (
	"net/http"
	"strings"

	"staffhub/utils"

	"github.com/gin-gonic/gin"
)

const sessionKey = "session"

// AuthMiddleware verifies the Bearer JWT and stores the caller's session in
// the gin context. Denials carry the redirect target the frontend router uses.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			denyUnauthenticated(c)
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid Authorization token format"})
			c.Abort()
			return
		}

		claims, err := utils.ParseJWTToken(parts[1])
		if err != nil {
			denyUnauthenticated(c)
			return
		}

		c.Set(sessionKey, Session{
			Authenticated: true,
			UserID:        claims.UserID,
			Email:         claims.Email,
			Roles:         claims.Roles,
		})
		c.Next()
	}
}

// RequireRoles gates a route group on role membership: any one match admits.
func RequireRoles(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := SessionFromContext(c)
		decision := DecideAccess(roles, session, c.Request.URL.Path)
		if !decision.Allowed {
			status := http.StatusForbidden
			message := "Insufficient permissions"
			if !session.Authenticated {
				status = http.StatusUnauthorized
				message = "Authentication required"
			}
			c.JSON(status, gin.H{"error": message, "redirect": decision.RedirectTo})
			c.Abort()
			return
		}
		c.Next()
	}
}

// SessionFromContext returns the session set by AuthMiddleware, or an
// unauthenticated session when absent.
func SessionFromContext(c *gin.Context) Session {
	if value, exists := c.Get(sessionKey); exists {
		if session, ok := value.(Session); ok {
			return session
		}
	}
	return Session{}
}

func denyUnauthenticated(c *gin.Context) {
	decision := DecideAccess(nil, Session{}, c.Request.URL.Path)
	c.JSON(http.StatusUnauthorized, gin.H{
		"error":    "Invalid or missing token",
		"redirect": decision.RedirectTo,
	})
	c.Abort()
}
