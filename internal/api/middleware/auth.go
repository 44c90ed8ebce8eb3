package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/keepnote/keepnote-api/internal/api/shared"
	"github.com/keepnote/keepnote-api/internal/service/auth"
)

// AuthMiddleware protects routes that require authentication. It validates
// the bearer token on each request and stores the authenticated user's ID
// in the request context.
type AuthMiddleware struct {
	jwtService auth.JWTService
}

// NewAuthMiddleware creates a new middleware around the given JWT service.
func NewAuthMiddleware(jwtService auth.JWTService) *AuthMiddleware {
	return &AuthMiddleware{jwtService: jwtService}
}

// Authenticate verifies the Authorization header and rejects the request
// with 401 when the token is missing, malformed, or expired.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Authorization header required")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Authorization header format must be Bearer {token}")
			return
		}

		claims, err := m.jwtService.ValidateToken(r.Context(), parts[1])
		if err != nil {
			slog.Debug("token validation failed",
				"error", err,
				"trace_id", shared.GetTraceID(r.Context()))

			message := "Invalid token"
			if errors.Is(err, auth.ErrExpiredToken) {
				message = "Token expired"
			}
			shared.RespondWithError(w, r, http.StatusUnauthorized, message)
			return
		}

		ctx := context.WithValue(r.Context(), shared.UserIDContextKey, claims.UserID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserID extracts the authenticated user's ID from the request context.
// The second return value reports whether an ID was present, which is only
// the case for requests that passed through Authenticate.
func GetUserID(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(shared.UserIDContextKey).(string)
	if !ok || userID == "" {
		return "", false
	}
	return userID, true
}
