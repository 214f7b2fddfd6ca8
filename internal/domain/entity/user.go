// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the identity record at the center of the system. Email and
// username are unique across all users. PasswordHash is nil for accounts
// created through Google sign-in; RefreshTokenHash anchors the single
// currently valid refresh token and is nil while the user is logged out.
type User struct {
	ID               uuid.UUID
	Email            string
	Username         string
	PasswordHash     *string
	Role             Role
	RefreshTokenHash *string
	ImageURL         string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// HasPassword reports whether the account can authenticate with a password.
// Google-only accounts never store one.
func (u *User) HasPassword() bool {
	return u.PasswordHash != nil && *u.PasswordHash != ""
}
