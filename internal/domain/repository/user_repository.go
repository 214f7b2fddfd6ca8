// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers
// and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"spotter/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
// The application layer depends on this interface, not the concrete
// implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	// Returns ErrUserNotFound when no user has that email.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create persists a new user entity to the storage.
	Create(ctx context.Context, user *entity.User) error

	// Update modifies an existing user entity in the storage.
	Update(ctx context.Context, user *entity.User) error

	// SetRefreshTokenHash unconditionally overwrites the stored refresh token
	// hash for a user. A nil hash clears the anchor (logout).
	SetRefreshTokenHash(ctx context.Context, userID uuid.UUID, hash *string) error

	// SwapRefreshTokenHash atomically replaces the stored refresh token hash
	// only if it still equals oldHash. It reports false when the stored hash
	// changed concurrently, which the caller treats as token reuse.
	SwapRefreshTokenHash(ctx context.Context, userID uuid.UUID, oldHash, newHash string) (bool, error)
}
