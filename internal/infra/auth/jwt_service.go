// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"spotter/config"
	domainerrors "spotter/internal/domain/errors"
	"spotter/internal/domain/service"
	"spotter/internal/errors"
)

const (
	accessTokenTTL  = 15 * time.Minute
	refreshTokenTTL = 30 * 24 * time.Hour

	tokenTypeAccess  = "access"
	tokenTypeRefresh = "refresh"
)

// jwtService is a concrete implementation of the TokenService interface using
// the JWT standard. Access and refresh tokens are signed with separate secrets
// so neither can stand in for the other.
type jwtService struct {
	accessSecret  string
	refreshSecret string
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" || cfg.SecretKey.Refresh == "" {
		return nil, errors.New("jwt secrets must be provided")
	}

	return &jwtService{
		accessSecret:  cfg.SecretKey.Access,
		refreshSecret: cfg.SecretKey.Refresh,
		accessTTL:     accessTokenTTL,
		refreshTTL:    refreshTokenTTL,
	}, nil
}

// GenerateAccessToken signs a short-lived access token for a user.
func (s *jwtService) GenerateAccessToken(userID uuid.UUID) (string, error) {
	return s.generateToken(userID, s.accessTTL, s.accessSecret, tokenTypeAccess)
}

// GenerateRefreshToken signs a long-lived refresh token for a user.
func (s *jwtService) GenerateRefreshToken(userID uuid.UUID) (string, error) {
	return s.generateToken(userID, s.refreshTTL, s.refreshSecret, tokenTypeRefresh)
}

// VerifyAccessToken checks signature and expiry against the access secret.
func (s *jwtService) VerifyAccessToken(token string) (*service.Claims, error) {
	return s.verifyToken(token, s.accessSecret, tokenTypeAccess)
}

// VerifyRefreshToken checks signature and expiry against the refresh secret.
func (s *jwtService) VerifyRefreshToken(token string) (*service.Claims, error) {
	return s.verifyToken(token, s.refreshSecret, tokenTypeRefresh)
}

// HashToken returns the sha256 hex digest of a token. The digest, never the
// token itself, is what gets anchored on the user row.
func (s *jwtService) HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))

	return hex.EncodeToString(sum[:])
}

// RefreshTokenTTL returns the configured refresh token lifetime.
func (s *jwtService) RefreshTokenTTL() time.Duration {
	return s.refreshTTL
}

func (s *jwtService) generateToken(userID uuid.UUID, ttl time.Duration, secret, tokenType string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": userID.String(),
		// A unique jti keeps two tokens minted within the same second from
		// being byte-identical, which would defeat rotation tracking.
		"jti":  uuid.New().String(),
		"iat":  now.Unix(),
		"exp":  now.Add(ttl).Unix(),
		"type": tokenType,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

func (s *jwtService) verifyToken(tokenString, secret, wantType string) (*service.Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, domainerrors.ErrInvalidToken.WrapMessage("failed to verify token")
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		// A bare (non-object) payload is rejected as invalid.
		return nil, domainerrors.ErrInvalidToken.WrapMessage("token payload is not a claims object")
	}

	if tokenType, _ := mapClaims["type"].(string); tokenType != wantType {
		return nil, domainerrors.ErrInvalidToken.WrapMessage("unexpected token type")
	}

	sub, err := mapClaims.GetSubject()
	if err != nil {
		return nil, domainerrors.ErrInvalidToken.WrapMessage("token subject missing")
	}

	userID, err := uuid.Parse(sub)
	if err != nil {
		return nil, domainerrors.ErrInvalidToken.WrapMessage("token subject is not a user id")
	}

	return &service.Claims{UserID: userID, Type: wantType}, nil
}
