package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// UserIDKey is the gin context key under which the caller identity is stored
const UserIDKey = "userID"

// OptionalAuth extracts the caller identity from a bearer token when
// one is presented and valid; everything else passes through as an
// anonymous caller.
func OptionalAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if userID, ok := callerFromRequest(c, secret); ok {
			c.Set(UserIDKey, userID)
		}
		c.Next()
	}
}

// RequireAuth rejects requests without a valid bearer token
func RequireAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := callerFromRequest(c, secret)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"code":    http.StatusUnauthorized,
				"message": "Unauthorized",
			})
			return
		}
		c.Set(UserIDKey, userID)
		c.Next()
	}
}

// OwnerID returns the authenticated caller's id, or nil for anonymous callers
func OwnerID(c *gin.Context) *string {
	v, ok := c.Get(UserIDKey)
	if !ok {
		return nil
	}
	userID, ok := v.(string)
	if !ok || userID == "" {
		return nil
	}
	return &userID
}

// callerFromRequest parses and verifies the Authorization header
func callerFromRequest(c *gin.Context, secret string) (string, bool) {
	header := c.GetHeader("Authorization")
	raw, found := strings.CutPrefix(header, "Bearer ")
	if !found || raw == "" {
		return "", false
	}

	token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return "", false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", false
	}
	sub, _ := claims["sub"].(string)
	if sub == "" {
		return "", false
	}
	return sub, true
}
