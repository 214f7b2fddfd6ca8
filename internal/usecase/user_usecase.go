package usecase

import (
	"context"

	"github.com/google/uuid"

	"spotter/internal/domain/entity"
)

// UserUsecase defines operations on the authenticated user's own account.
type UserUsecase interface {
	// Me returns the user's profile.
	Me(ctx context.Context, userID uuid.UUID) (*entity.User, error)

	// UpdateImage stores a new profile image and returns the updated user.
	UpdateImage(ctx context.Context, userID uuid.UUID, contentType string, data []byte) (*entity.User, error)
}
