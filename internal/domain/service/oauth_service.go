package service

import "context"

// OAuthUser is the identity extracted from a verified external ID token.
type OAuthUser struct {
	ID            string // subject claim at the provider
	Email         string
	Name          string
	Picture       string
	EmailVerified bool
}

// OAuthVerifier verifies an external identity provider's ID token and
// returns the asserted identity. Implementations own audience and issuer
// checks; callers only see a verified user or an error.
type OAuthVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*OAuthUser, error)
}
