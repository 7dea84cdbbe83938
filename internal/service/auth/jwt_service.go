// Package auth provides token issuance/verification and password hashing.
package auth

import (
	"context"
	"time"
)

// JWTService defines operations for managing JWT authentication tokens.
// Tokens are stateless: everything needed to verify them is the signing
// secret and the claims themselves, so no server-side session store exists.
type JWTService interface {
	// GenerateToken creates a signed JWT access token whose subject is the
	// user's email. Returns the token string or an error if signing fails.
	GenerateToken(ctx context.Context, email string) (string, error)

	// ValidateToken validates the provided token string and extracts the
	// claims. Returns an error if validation fails (expired, invalid
	// signature, malformed, etc.). Expiry is checked against the current
	// time at verification, not issuance.
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims represents the verified claims extracted from a token.
type Claims struct {
	// Subject is the email of the user the token was issued for.
	Subject string `json:"sub,omitempty"`

	// Standard registered JWT claims.
	IssuedAt  time.Time `json:"iat,omitempty"`
	ExpiresAt time.Time `json:"exp,omitempty"`
	ID        string    `json:"jti,omitempty"`
}
