package httpapi

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const bearerPrefix = "Bearer "

// requireAuth verifies an HS256 bearer token on the admin group. It exists
// for the always-on deployment form, which has no API gateway in front of
// it; the lambda form normally runs with this disabled because the gateway
// rejects unauthenticated calls before the router is invoked.
func requireAuth(secret string) gin.HandlerFunc {
	key := []byte(secret)

	return func(c *gin.Context) {
		authz := c.GetHeader("Authorization")
		if !strings.HasPrefix(authz, bearerPrefix) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "UNAUTHORIZED"})
			return
		}

		tokenString := strings.TrimPrefix(authz, bearerPrefix)
		token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
			return key, nil
		}, jwt.WithValidMethods([]string{"HS256"}))
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "UNAUTHORIZED"})
			return
		}

		c.Next()
	}
}
