// Package middleware contains shared Gin middleware used by the HTTP layer.
//
// This file implements bearer-token authentication. Auth() validates the
// Authorization header, verifies the HS256 JWT issued by the account service,
// and stores the token subject in the Gin context under "userID" where the
// rate limiter, access logger, and handlers pick it up.
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// userIDKey is the Gin context key under which the authenticated user ID is
// stored. Shared by convention with KeyByUserOrIP and handlers.
const userIDKey = "userID"

// Auth returns a Gin middleware that requires a valid "Bearer <token>"
// Authorization header signed with secret (HS256).
//
// Behavior:
//   - Missing header, wrong scheme, bad signature, unexpected algorithm,
//     expiry, or an empty subject all abort with a 401 JSON envelope
//     { "request_id": "...", "code": "unauthorized", "message": "..." }.
//     The message distinguishes a missing header from an invalid token but
//     never says why validation failed.
//   - On success, the token subject (the user ID) is stored under "userID".
func Auth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			unauthorized(c, "missing bearer token")
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			unauthorized(c, "invalid authorization header")
			return
		}

		token, err := jwt.Parse(parts[1], func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrTokenSignatureInvalid
			}
			return secret, nil
		}, jwt.WithValidMethods([]string{"HS256"}))
		if err != nil || !token.Valid {
			unauthorized(c, "invalid or expired token")
			return
		}

		sub, err := token.Claims.GetSubject()
		if err != nil || sub == "" {
			unauthorized(c, "invalid or expired token")
			return
		}

		c.Set(userIDKey, sub)
		c.Next()
	}
}

// UserID returns the authenticated user ID placed in the context by Auth(),
// or "" when the request is unauthenticated.
func UserID(c *gin.Context) string {
	if v, ok := c.Get(userIDKey); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// unauthorized aborts with the standard 401 error envelope.
func unauthorized(c *gin.Context, msg string) {
	c.Header("WWW-Authenticate", `Bearer realm="api"`)
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"request_id": c.Writer.Header().Get(requestIDHeader),
		"code":       "unauthorized",
		"message":    msg,
	})
}
