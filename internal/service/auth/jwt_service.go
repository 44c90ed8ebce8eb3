package auth

import (
	"context"
	"time"
)

// JWTService defines operations for managing the session tokens that gate
// every authenticated request. The token's subject is the authenticated
// user's ID; handlers compare it against entity ownership before mutating.
type JWTService interface {
	// GenerateToken creates a signed JWT access token for the given user ID.
	// Returns the token string or an error if token generation fails.
	GenerateToken(ctx context.Context, userID string) (string, error)

	// ValidateToken validates the provided token string and extracts the claims.
	// Returns the claims containing the user ID if the token is valid,
	// or an error if validation fails (expired, invalid signature, etc.).
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims represents the custom claims structure for the session tokens.
// It extends standard JWT registered claims with application-specific fields.
type Claims struct {
	// UserID is the identifier of the user the token was issued for.
	UserID string `json:"uid,omitempty"`

	// Standard registered JWT claims
	Subject   string    `json:"sub,omitempty"`
	IssuedAt  time.Time `json:"iat,omitempty"`
	ExpiresAt time.Time `json:"exp,omitempty"`
	ID        string    `json:"jti,omitempty"`
}
