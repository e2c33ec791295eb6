package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// Context keys for the verified identity.
const (
	ctxUserID   = "userId"
	ctxUsername = "username"
)

// Error messages match the wire contract the frontend was written against.
const (
	errNoToken      = "No token"
	errInvalidToken = "Token inválido"
)

// identityMiddleware verifies the bearer token and attaches the claims to
// the request context. Missing header and invalid/expired token both end the
// request with 401; only the message differs.
func (h *Handler) identityMiddleware(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if header == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": errNoToken,
		})
		return
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": errInvalidToken,
		})
		return
	}

	claims, err := h.services.ParseToken(parts[1])
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": errInvalidToken,
		})
		return
	}

	// store in Gin context
	c.Set(ctxUserID, claims.UserID)
	c.Set(ctxUsername, claims.Username)
	c.Next()
}
