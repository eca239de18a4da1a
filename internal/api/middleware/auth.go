package middleware

import (
	"context"
	"log"
	"net/http"
	"strings"

	"Labeddit/internal/api/handlers"
	"Labeddit/internal/auth"
)

// Context keys for storing user information
type contextKey string

const (
	UserIDKey       contextKey = "user_id"
	TokenPayloadKey contextKey = "token_payload"
)

// TokenVerifier resolves a bearer token to its payload, or nil if the token is invalid
type TokenVerifier interface {
	GetPayload(token string) *auth.TokenPayload
}

// AuthMiddleware enforces bearer-token authentication for protected routes
type AuthMiddleware struct {
	verifier TokenVerifier
}

// NewAuthMiddleware creates a new auth middleware
func NewAuthMiddleware(verifier TokenVerifier) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier}
}

// RequireAuth middleware ensures the request carries a valid bearer token.
// Missing or invalid tokens are rejected with 400 InvalidToken.
// On success the user id and token payload are injected into the context.
func (m *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := strings.TrimSpace(r.Header.Get("Authorization"))
		if authHeader == "" {
			handlers.WriteError(w, http.StatusBadRequest, "InvalidToken", "Missing Authorization header")
			return
		}

		payload := m.verifier.GetPayload(authHeader)
		if payload == nil {
			log.Printf("[AUTH_FAILURE] type=invalid_token ip=%s method=%s path=%s",
				r.RemoteAddr, r.Method, r.URL.Path)
			handlers.WriteError(w, http.StatusBadRequest, "InvalidToken", "Invalid or expired token")
			return
		}

		ctx := context.WithValue(r.Context(), UserIDKey, payload.ID)
		ctx = context.WithValue(ctx, TokenPayloadKey, payload)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserID extracts the authenticated user's id from the request context
// Returns empty string if not authenticated
func GetUserID(r *http.Request) string {
	id, _ := r.Context().Value(UserIDKey).(string)
	return id
}

// GetTokenPayload extracts the token payload from the request context
// Returns nil if not authenticated
func GetTokenPayload(r *http.Request) *auth.TokenPayload {
	payload, _ := r.Context().Value(TokenPayloadKey).(*auth.TokenPayload)
	return payload
}

// SetTestUserID sets the user id in the context for testing purposes
// This function should ONLY be used in tests to mock authenticated users
func SetTestUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, UserIDKey, userID)
}
