package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims carried by both token kinds.
type Claims struct {
	UserID uuid.UUID
	Type   string // "access" or "refresh"
	jwt.RegisteredClaims
}

// TokenService defines the interface for minting and verifying JWTs.
// It owns no state: it is a pure function of the two signing secrets,
// the payload and the clock.
type TokenService interface {
	// GenerateAccessToken signs a short-lived access token for a user.
	GenerateAccessToken(userID uuid.UUID) (string, error)

	// GenerateRefreshToken signs a long-lived refresh token for a user.
	GenerateRefreshToken(userID uuid.UUID) (string, error)

	// VerifyAccessToken checks signature and expiry against the access secret.
	VerifyAccessToken(token string) (*Claims, error)

	// VerifyRefreshToken checks signature and expiry against the refresh secret.
	VerifyRefreshToken(token string) (*Claims, error)

	// HashToken returns the hex digest used to anchor a refresh token
	// server-side. Deterministic; safe to persist.
	HashToken(token string) string

	// RefreshTokenTTL returns the configured refresh token lifetime.
	RefreshTokenTTL() time.Duration
}
