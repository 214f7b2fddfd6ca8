// Package google verifies Google Sign-In ID tokens.
package google

import (
	"context"
	"log/slog"

	"google.golang.org/api/idtoken"

	"spotter/config"
	domainerrors "spotter/internal/domain/errors"
	"spotter/internal/domain/service"
	"spotter/internal/errors"
)

// verifier implements service.OAuthVerifier against Google's token
// endpoint. Signature, expiry, issuer and audience checks are delegated to
// the idtoken package.
type verifier struct {
	clientID string
	logger   *slog.Logger
}

// NewVerifier is the constructor for verifier. A missing client ID is a
// configuration error surfaced at startup, not at request time.
func NewVerifier(cfg *config.Config, logger *slog.Logger) (service.OAuthVerifier, error) {
	if cfg.GoogleOAuth == nil || cfg.GoogleOAuth.ClientID == "" {
		return nil, errors.New("google oauth client id must be provided")
	}

	return &verifier{clientID: cfg.GoogleOAuth.ClientID, logger: logger}, nil
}

// VerifyIDToken validates a Google ID token and extracts the asserted identity.
func (v *verifier) VerifyIDToken(ctx context.Context, rawToken string) (*service.OAuthUser, error) {
	payload, err := idtoken.Validate(ctx, rawToken, v.clientID)
	if err != nil {
		v.logger.Warn("Google ID token rejected", slog.Any("error", err))

		return nil, domainerrors.ErrInvalidToken.WrapMessage("google id token verification failed")
	}

	user := &service.OAuthUser{
		ID:            payload.Subject,
		Email:         claimString(payload.Claims, "email"),
		Name:          claimString(payload.Claims, "name"),
		Picture:       claimString(payload.Claims, "picture"),
		EmailVerified: claimBool(payload.Claims, "email_verified"),
	}

	if user.Email == "" {
		return nil, domainerrors.ErrInvalidToken.WrapMessage("google id token has no email claim")
	}

	return user, nil
}

func claimString(claims map[string]any, key string) string {
	s, _ := claims[key].(string)

	return s
}

func claimBool(claims map[string]any, key string) bool {
	b, _ := claims[key].(bool)

	return b
}
