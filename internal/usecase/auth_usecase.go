// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"github.com/google/uuid"

	"spotter/internal/domain/entity"
)

// RegisterInput is the payload for creating a new account.
type RegisterInput struct {
	Email    string `json:"email" validate:"required,email"`
	Username string `json:"username" validate:"required,min=3,max=30"`
	Password string `json:"password" validate:"required,min=8"`
}

// LoginInput is the payload for a password login.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// GoogleSignInInput carries the ID token obtained from Google on the client.
type GoogleSignInInput struct {
	IDToken string `json:"idToken" validate:"required"`
}

// AuthOutput is the result of any operation that establishes a session.
type AuthOutput struct {
	User   *entity.User
	Tokens entity.TokenPair
}

// AuthDecision is the outcome of gate authentication. Rotated is non-nil
// only when the access token had expired and a silent refresh minted a new
// pair that the caller must hand back to the client.
type AuthDecision struct {
	UserID  uuid.UUID
	Rotated *entity.TokenPair
}

// AuthUsecase defines the authentication and session lifecycle operations.
type AuthUsecase interface {
	// Register creates a new account and opens a session for it.
	Register(ctx context.Context, input RegisterInput) (*AuthOutput, error)

	// Login authenticates an email/password pair and opens a session.
	Login(ctx context.Context, input LoginInput) (*AuthOutput, error)

	// GoogleSignIn verifies a Google ID token and opens a session, creating
	// a passwordless account on first sign-in.
	GoogleSignIn(ctx context.Context, input GoogleSignInInput) (*AuthOutput, error)

	// Refresh rotates a refresh token: verifies it, checks it is the anchored
	// one, and atomically replaces it with a fresh pair. A token that is valid
	// but no longer anchored is treated as reuse and rejected.
	Refresh(ctx context.Context, refreshToken string) (*AuthOutput, error)

	// Logout revokes the session anchored to the refresh token. It never
	// fails on an already-dead session.
	Logout(ctx context.Context, refreshToken string) error

	// Authenticate resolves the caller's identity from an access token,
	// falling back to a silent refresh when the access token is expired but
	// a valid refresh token is presented.
	Authenticate(ctx context.Context, accessToken, refreshToken string) (*AuthDecision, error)
}
