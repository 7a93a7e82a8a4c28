package middleware

import (
	"net/http"
	"strings"

	"github.com/vaibhavharit14/BudgetBox/internal/util"

	"github.com/gin-gonic/gin"
)

// ContextUserKey is the gin context key the verified identity is stored under.
const ContextUserKey = "currentUser"

// AuthMiddleware verifies the Authorization bearer token and stores the
// embedded identity claims in the context for downstream handlers.
func AuthMiddleware(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			util.Error(c, http.StatusUnauthorized, util.CodeAuth, "Access denied. No token provided.")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
			util.Error(c, http.StatusUnauthorized, util.CodeAuth, "Access denied. No token provided.")
			c.Abort()
			return
		}

		claims, err := util.ParseToken(jwtSecret, parts[1])
		if err != nil {
			util.Error(c, http.StatusUnauthorized, util.CodeAuth, "Invalid token")
			c.Abort()
			return
		}

		c.Set(ContextUserKey, claims)
		c.Next()
	}
}

// CurrentUser returns the verified claims placed by AuthMiddleware.
func CurrentUser(c *gin.Context) (*util.Claims, bool) {
	v, ok := c.Get(ContextUserKey)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*util.Claims)
	return claims, ok && claims != nil
}
