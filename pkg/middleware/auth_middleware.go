package middleware

import (
	"crypto/subtle"
	"net/http"
	"slices"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	HeaderUserScopes = "X-User-Scopes"
	HeaderAPIKey     = "X-API-Key"
)

type AuthMiddleware interface {
	CheckUserPermission(requiredScope string) gin.HandlerFunc
}

// authMiddleware trusts the scopes injected by the gateway. A configured api key lets
// machine clients (cron jobs, the CLI) through without a gateway.
type authMiddleware struct {
	apiKey string
}

func (a *authMiddleware) CheckUserPermission(requiredScope string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if key := c.GetHeader(HeaderAPIKey); key != "" && a.apiKey != "" {
			if subtle.ConstantTimeCompare([]byte(key), []byte(a.apiKey)) == 1 {
				c.Next()
				return
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"message": "Invalid api key",
			})
			return
		}
		scopesHeader := c.GetHeader(HeaderUserScopes)
		if len(scopesHeader) == 0 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"message": "X-User-Scopes header is empty",
			})
			return
		}
		scopes := strings.Split(scopesHeader, ",")
		for i := range scopes {
			scopes[i] = strings.TrimSpace(scopes[i])
		}
		if !slices.Contains(scopes, requiredScope) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"message": "Permission denied",
			})
			return
		}
		c.Next()
	}
}

func NewAuthMiddleware(apiKey string) AuthMiddleware {
	return &authMiddleware{apiKey: apiKey}
}
