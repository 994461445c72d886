// Package middleware provides HTTP middleware for authentication.
package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

// ContextKey is a typed key for context values to avoid collisions.
type ContextKey string

// userIDKey is the context key for storing the authenticated user ID.
const userIDKey ContextKey = "userID"

// TokenValidator validates JWT tokens. The indirection keeps this package
// free of an import cycle with the server package that owns the JWT service.
type TokenValidator interface {
	ValidateToken(tokenString string) (UserIDGetter, error)
}

// UserIDGetter extracts the user ID from token claims.
type UserIDGetter interface {
	GetUserID() uuid.UUID
}

// Auth returns middleware that validates Bearer tokens and stores the
// authenticated user ID on the request context.
func Auth(jwtService TokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			claims, err := jwtService.ValidateToken(token)
			if err != nil {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, claims.GetUserID())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// bearerToken pulls the token out of the Authorization header. The Bearer
// prefix is matched case-insensitively.
func bearerToken(r *http.Request) string {
	parts := strings.Fields(r.Header.Get("Authorization"))
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}

// GetUserID extracts the authenticated user ID from the request context.
func GetUserID(r *http.Request) (uuid.UUID, error) {
	userID, ok := r.Context().Value(userIDKey).(uuid.UUID)
	if !ok {
		return uuid.Nil, fmt.Errorf("user ID not found in request context")
	}
	return userID, nil
}

// UserIDKey returns the context key for user ID (for testing purposes).
func UserIDKey() ContextKey {
	return userIDKey
}
